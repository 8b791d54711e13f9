package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box listing what was checked or what failed
type Result struct {
	Type  ResultType
	Title string   // e.g., "All fields valid"
	Items []string // Detail lines (checked fields or error messages)
	Width int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, items []string) *Result {
	return &Result{
		Type:  ResultSuccess,
		Title: title,
		Items: items,
		Width: GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box with one line per error
func NewFailureResult(title string, errs []error) *Result {
	items := make([]string, 0, len(errs))
	for _, err := range errs {
		items = append(items, err.Error())
	}
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Items: items,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	marker, label := SuccessMarker, "SUCCESS"
	titleStyle, itemStyle, border := SuccessTitleStyle, FieldValueStyle, SuccessColor
	if r.Type == ResultFailure {
		marker, label = FailureMarker, "FAILED"
		titleStyle, itemStyle, border = ErrorTitleStyle, ErrorMessageStyle, ErrorColor
	}

	lines := []string{
		"",
		titleStyle.Render(fmt.Sprintf(" %s  %s  ─  %s", marker, label, r.Title)),
		"",
	}
	for _, item := range r.Items {
		lines = append(lines, itemStyle.Render("   "+item))
	}
	if len(r.Items) > 0 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
