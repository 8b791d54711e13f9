package siteconfig

import (
	"fmt"
	"strings"

	"github.com/based-ghost/codeblog/internal/ui"
)

// FormatIdentity returns the identity record as a styled box.
func FormatIdentity(s SiteIdentity, width int) string {
	return ui.NewHeader(s.Title, s.Subtitle).
		SetWidth(width).
		AddField("Email", s.Address()).
		AddLink("GitHub", s.GitHubURL).
		Render()
}

// FormatVendors returns the vendor links as a styled box.
func FormatVendors(v VendorLinks, width int) string {
	h := ui.NewHeader("Vendors", "Technologies referenced on the blog").SetWidth(width)
	for _, link := range v.Links() {
		h.AddLink(link.Name, link.URL)
	}
	return h.Render()
}

// FormatDetailed returns both records as styled boxes, identity first.
func FormatDetailed(s SiteIdentity, v VendorLinks, width int) string {
	return FormatIdentity(s, width) + "\n" + FormatVendors(v, width)
}

// FormatIdentityCompact returns one key=value line per identity field.
func FormatIdentityCompact(s SiteIdentity) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("email=%s\n", s.Email))
	b.WriteString(fmt.Sprintf("githubUrl=%s\n", s.GitHubURL))
	b.WriteString(fmt.Sprintf("title=%s\n", s.Title))
	b.WriteString(fmt.Sprintf("subtitle=%s\n", s.Subtitle))

	return b.String()
}

// FormatVendorsCompact returns one key=value line per vendor link.
func FormatVendorsCompact(v VendorLinks) string {
	var b strings.Builder

	for _, link := range v.Links() {
		b.WriteString(fmt.Sprintf("%s=%s\n", link.Key, link.URL))
	}

	return b.String()
}

// FormatCompact returns both records as unstyled key=value lines,
// suitable for grep and shell scripts.
func FormatCompact(s SiteIdentity, v VendorLinks) string {
	return FormatIdentityCompact(s) + FormatVendorsCompact(v)
}
