// Package siteconfig exposes the blog's static site configuration.
//
// Two records are provided:
//   - SiteIdentity: author contact, project title, subtitle and GitHub link
//   - VendorLinks: homepage URLs for the technologies the blog references
//
// Both are assembled once from the constants in the urls package and handed
// out by value, so every caller gets its own copy and the shared records can
// never be changed after package initialization. Reads need no locking.
//
// # Usage
//
//	site := siteconfig.GetSiteIdentity()
//	fmt.Println(site.Title) // code-blog
//
//	vendors := siteconfig.GetVendorLinks()
//	for _, link := range vendors.Links() {
//	    fmt.Printf("%s: %s\n", link.Name, link.URL)
//	}
//
// # Validation
//
// The records are literals, so they cannot fail at runtime. Validate and
// ValidateAll exist so tooling and tests can confirm that every URL is an
// absolute https URL and that the email is a well-formed mailto URI.
package siteconfig
