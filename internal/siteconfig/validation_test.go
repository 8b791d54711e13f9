package siteconfig

import (
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid: site email", "mailto:mareddia@protonmail.com", false},
		{"Valid: subdomain", "mailto:a.b@mail.example.org", false},
		{"Invalid: no scheme", "mareddia@protonmail.com", true},
		{"Invalid: wrong scheme", "mail:mareddia@protonmail.com", true},
		{"Invalid: empty", "", true},
		{"Invalid: scheme only", "mailto:", true},
		{"Invalid: no at", "mailto:mareddia", true},
		{"Invalid: no local part", "mailto:@protonmail.com", true},
		{"Invalid: dotless domain", "mailto:user@localhost", true},
		{"Invalid: display name", "mailto:Matt <m@example.com>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("Expected ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"Valid: root", "https://reactjs.org/", false},
		{"Valid: path", "https://github.com/based-ghost", false},
		{"Invalid: http", "http://reactjs.org/", true},
		{"Invalid: relative", "/docs/", true},
		{"Invalid: no scheme", "reactjs.org", true},
		{"Invalid: empty", "", true},
		{"Invalid: no host", "https:///path", true},
		{"Invalid: bad escape", "https://example.com/%zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("Expected ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateNonEmpty(t *testing.T) {
	if err := ValidateNonEmpty("title", "code-blog"); err != nil {
		t.Errorf("ValidateNonEmpty() error = %v", err)
	}
	if err := ValidateNonEmpty("title", "   "); err == nil {
		t.Error("ValidateNonEmpty() should reject blank values")
	}
}

func TestSiteIdentityValidate(t *testing.T) {
	tests := []struct {
		name       string
		site       SiteIdentity
		wantFields []string
	}{
		{
			name:       "Valid: shipped record",
			site:       GetSiteIdentity(),
			wantFields: nil,
		},
		{
			name: "Invalid: every field",
			site: SiteIdentity{
				Email:     "nobody",
				GitHubURL: "http://github.com/x",
			},
			wantFields: []string{"email", "githubUrl", "title", "subtitle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.site.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() got %d errors, want %d: %v", len(errs), len(tt.wantFields), errs)
			}
			for i, err := range errs {
				vErr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("error %d is %T, want *ValidationError", i, err)
				}
				if vErr.Field != tt.wantFields[i] {
					t.Errorf("error %d field = %q, want %q", i, vErr.Field, tt.wantFields[i])
				}
			}
		})
	}
}

func TestVendorLinksValidate(t *testing.T) {
	if errs := GetVendorLinks().Validate(); len(errs) != 0 {
		t.Errorf("shipped VendorLinks invalid: %v", errs)
	}

	v := GetVendorLinks()
	v.VuexURL = "http://vuex.vuejs.org/"
	v.TypeScriptURL = ""

	errs := v.Validate()
	if len(errs) != 2 {
		t.Fatalf("Validate() got %d errors, want 2: %v", len(errs), errs)
	}
	if got := errs[0].Error(); got != `vuexUrl: URL scheme must be https, got "http"` {
		t.Errorf("errs[0] = %q", got)
	}
	if got := errs[1].Error(); got != "typescriptUrl: URL cannot be empty" {
		t.Errorf("errs[1] = %q", got)
	}
}

func TestValidateAll(t *testing.T) {
	if errs := ValidateAll(); len(errs) != 0 {
		t.Errorf("ValidateAll() = %v, want no errors", errs)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("", "x", "bad value")
	if err.Error() != "bad value" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad value")
	}

	err = NewValidationError("title", "", "value cannot be empty")
	if err.Error() != "title: value cannot be empty" {
		t.Errorf("Error() = %q", err.Error())
	}
}
