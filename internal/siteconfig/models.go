package siteconfig

import (
	"strings"

	"github.com/based-ghost/codeblog/internal/urls"
)

// Branding strings shown in the site header.
const (
	Title    = "code-blog"
	Subtitle = "Howdy, I'm Matt Areddia - a Full-Stack .NET developer based out of Milwaukee, WI"
)

const mailtoScheme = "mailto:"

// SiteIdentity holds the author contact details and site branding.
type SiteIdentity struct {
	Email     string `json:"email" yaml:"email"`         // mailto: URI
	GitHubURL string `json:"githubUrl" yaml:"githubUrl"` // Author's GitHub profile
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle" yaml:"subtitle"`
}

// VendorLinks maps the technologies referenced by the blog to their homepages.
type VendorLinks struct {
	VueURL        string `json:"vueUrl" yaml:"vueUrl"`
	VuexURL       string `json:"vuexUrl" yaml:"vuexUrl"`
	ReactURL      string `json:"reactUrl" yaml:"reactUrl"`
	ReduxURL      string `json:"reduxUrl" yaml:"reduxUrl"`
	AspNetURL     string `json:"aspNetUrl" yaml:"aspNetUrl"`
	TypeScriptURL string `json:"typescriptUrl" yaml:"typescriptUrl"`
}

// Link is a single named vendor link.
type Link struct {
	Name string // Display name (e.g., "React")
	Key  string // Field key as seen by consumers (e.g., "reactUrl")
	URL  string
}

var (
	siteIdentity = SiteIdentity{
		Email:     urls.Email,
		GitHubURL: urls.GitHub,
		Title:     Title,
		Subtitle:  Subtitle,
	}

	vendorLinks = VendorLinks{
		VueURL:        urls.Vue,
		VuexURL:       urls.Vuex,
		ReactURL:      urls.React,
		ReduxURL:      urls.Redux,
		AspNetURL:     urls.AspNet,
		TypeScriptURL: urls.TypeScript,
	}
)

// GetSiteIdentity returns a copy of the site identity record.
func GetSiteIdentity() SiteIdentity {
	return siteIdentity
}

// GetVendorLinks returns a copy of the vendor links record.
func GetVendorLinks() VendorLinks {
	return vendorLinks
}

// Address returns the email address without the mailto: scheme.
func (s SiteIdentity) Address() string {
	return strings.TrimPrefix(s.Email, mailtoScheme)
}

// Links returns the vendor links in declaration order.
// A new slice is allocated on every call.
func (v VendorLinks) Links() []Link {
	return []Link{
		{Name: "Vue", Key: "vueUrl", URL: v.VueURL},
		{Name: "Vuex", Key: "vuexUrl", URL: v.VuexURL},
		{Name: "React", Key: "reactUrl", URL: v.ReactURL},
		{Name: "Redux", Key: "reduxUrl", URL: v.ReduxURL},
		{Name: "ASP.NET", Key: "aspNetUrl", URL: v.AspNetURL},
		{Name: "TypeScript", Key: "typescriptUrl", URL: v.TypeScriptURL},
	}
}

// Lookup finds a vendor URL by display name or field key, ignoring case.
// "react", "React" and "reactUrl" all resolve to ReactURL.
func (v VendorLinks) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, link := range v.Links() {
		if strings.EqualFold(name, link.Name) || strings.EqualFold(name, link.Key) {
			return link.URL, true
		}
	}
	return "", false
}

// Document bundles both records for machine-readable output.
type Document struct {
	Site    SiteIdentity `json:"site" yaml:"site"`
	Vendors VendorLinks  `json:"vendors" yaml:"vendors"`
}

// NewDocument returns a Document populated with the current records.
func NewDocument() Document {
	return Document{
		Site:    GetSiteIdentity(),
		Vendors: GetVendorLinks(),
	}
}
