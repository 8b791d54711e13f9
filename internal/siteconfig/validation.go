package siteconfig

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ValidateNonEmpty checks that a field value is not blank.
func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, value, "value cannot be empty")
	}
	return nil
}

// ValidateEmail checks that s is a mailto URI of the form
// mailto:<local>@<domain>, where the domain contains at least one dot.
func ValidateEmail(s string) error {
	if !strings.HasPrefix(s, mailtoScheme) {
		return NewValidationError("", s, fmt.Sprintf("email must start with %q", mailtoScheme))
	}

	addr := strings.TrimPrefix(s, mailtoScheme)
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return NewValidationError("", s, fmt.Sprintf("invalid email address: %v", err))
	}
	// ParseAddress accepts "Name <addr>" forms; only a bare address is allowed here
	if parsed.Address != addr {
		return NewValidationError("", s, "email must be a bare address")
	}

	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" || domain == "" {
		return NewValidationError("", s, "email must be <local>@<domain>")
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return NewValidationError("", s, fmt.Sprintf("invalid email domain %q", domain))
	}

	return nil
}

// ValidateURL checks that s is an absolute https URL with a host.
func ValidateURL(s string) error {
	if s == "" {
		return NewValidationError("", s, "URL cannot be empty")
	}

	u, err := url.Parse(s)
	if err != nil {
		return NewValidationError("", s, fmt.Sprintf("invalid URL: %v", err))
	}
	if !u.IsAbs() {
		return NewValidationError("", s, "URL must be absolute")
	}
	if u.Scheme != "https" {
		return NewValidationError("", s, fmt.Sprintf("URL scheme must be https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return NewValidationError("", s, "URL has no host")
	}

	return nil
}

// Validate checks every field of the identity record.
// Returns a slice of validation errors (empty if valid).
func (s SiteIdentity) Validate() []error {
	var errs []error

	if err := ValidateEmail(s.Email); err != nil {
		errs = append(errs, withField("email", err))
	}
	if err := ValidateURL(s.GitHubURL); err != nil {
		errs = append(errs, withField("githubUrl", err))
	}
	if err := ValidateNonEmpty("title", s.Title); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateNonEmpty("subtitle", s.Subtitle); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// Validate checks that every vendor link is an absolute https URL.
// Returns a slice of validation errors (empty if valid).
func (v VendorLinks) Validate() []error {
	var errs []error

	for _, link := range v.Links() {
		if err := ValidateURL(link.URL); err != nil {
			errs = append(errs, withField(link.Key, err))
		}
	}

	return errs
}

// ValidateAll validates both records.
func ValidateAll() []error {
	errs := GetSiteIdentity().Validate()
	return append(errs, GetVendorLinks().Validate()...)
}
