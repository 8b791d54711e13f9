package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is a labelled value displayed inside a Header.
type Field struct {
	Key   string
	Value string
	Link  bool // Render the value with LinkStyle
}

// Header represents a boxed block with a title, a subtitle line and fields.
// Fields are rendered in the order they were added.
type Header struct {
	Title    string  // e.g., "code-blog"
	Subtitle string  // e.g., the site tagline or a command path
	Fields   []Field // Ordered key/value rows
	Width    int     // Terminal width for responsive rendering
}

// NewHeader creates a new header sized to the current terminal
func NewHeader(title, subtitle string) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// AddField appends a plain text row
func (h *Header) AddField(key, value string) *Header {
	h.Fields = append(h.Fields, Field{Key: key, Value: value})
	return h
}

// AddLink appends a row whose value is a URL
func (h *Header) AddLink(key, url string) *Header {
	h.Fields = append(h.Fields, Field{Key: key, Value: url, Link: true})
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	top := titleLine
	if h.Subtitle != "" {
		// Long taglines wrap inside the box
		subtitle := HeaderCommandStyle.Width(width - 4).Render(h.Subtitle)
		top = lipgloss.JoinVertical(lipgloss.Left, titleLine, subtitle)
	}

	content := top
	if len(h.Fields) > 0 {
		dividerWidth := width - 6
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := RenderHorizontalDivider(dividerWidth, "─")

		rows := make([]string, 0, len(h.Fields))
		for _, f := range h.Fields {
			rows = append(rows, renderField(f))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(rows, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

func renderField(f Field) string {
	key := FieldKeyStyle.Render(f.Key + ":")
	if f.Link {
		return key + " " + LinkStyle.Render(f.Value)
	}
	return key + " " + FieldValueStyle.Render(f.Value)
}
