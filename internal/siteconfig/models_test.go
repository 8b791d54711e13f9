package siteconfig

import (
	"reflect"
	"sync"
	"testing"
)

func TestGetSiteIdentity(t *testing.T) {
	site := GetSiteIdentity()

	if site.Title != "code-blog" {
		t.Errorf("Title = %q, want %q", site.Title, "code-blog")
	}
	if site.Email != "mailto:mareddia@protonmail.com" {
		t.Errorf("Email = %q, want %q", site.Email, "mailto:mareddia@protonmail.com")
	}
	if site.GitHubURL != "https://github.com/based-ghost" {
		t.Errorf("GitHubURL = %q", site.GitHubURL)
	}
	if site.Subtitle != Subtitle {
		t.Errorf("Subtitle = %q, want %q", site.Subtitle, Subtitle)
	}
}

func TestGetVendorLinks(t *testing.T) {
	v := GetVendorLinks()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"vue", v.VueURL, "https://vuejs.org/"},
		{"vuex", v.VuexURL, "https://vuex.vuejs.org/"},
		{"react", v.ReactURL, "https://reactjs.org/"},
		{"redux", v.ReduxURL, "https://redux.js.org/"},
		{"aspnet", v.AspNetURL, "https://www.asp.net/"},
		{"typescript", v.TypeScriptURL, "https://www.typescriptlang.org/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestAllFieldsNonEmpty(t *testing.T) {
	for _, rec := range []any{GetSiteIdentity(), GetVendorLinks()} {
		rv := reflect.ValueOf(rec)
		for i := 0; i < rv.NumField(); i++ {
			name := rv.Type().Field(i).Name
			if rv.Field(i).String() == "" {
				t.Errorf("%s.%s is empty", rv.Type().Name(), name)
			}
		}
	}
}

func TestRecordsAreCopies(t *testing.T) {
	site := GetSiteIdentity()
	site.Title = "changed"

	vendors := GetVendorLinks()
	vendors.ReactURL = "https://example.com/"

	if GetSiteIdentity().Title != "code-blog" {
		t.Error("modifying a returned SiteIdentity changed the shared record")
	}
	if GetVendorLinks().ReactURL != "https://reactjs.org/" {
		t.Error("modifying returned VendorLinks changed the shared record")
	}
}

func TestRepeatedReadsAreEqual(t *testing.T) {
	if GetSiteIdentity() != GetSiteIdentity() {
		t.Error("GetSiteIdentity() is not idempotent")
	}
	if GetVendorLinks() != GetVendorLinks() {
		t.Error("GetVendorLinks() is not idempotent")
	}
}

func TestConcurrentReads(t *testing.T) {
	want := GetSiteIdentity()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := GetSiteIdentity(); got != want {
				t.Errorf("concurrent read got %+v", got)
			}
			_ = GetVendorLinks().Links()
		}()
	}
	wg.Wait()
}

func TestAddress(t *testing.T) {
	if got := GetSiteIdentity().Address(); got != "mareddia@protonmail.com" {
		t.Errorf("Address() = %q, want %q", got, "mareddia@protonmail.com")
	}
}

func TestLinksOrder(t *testing.T) {
	links := GetVendorLinks().Links()

	wantKeys := []string{"vueUrl", "vuexUrl", "reactUrl", "reduxUrl", "aspNetUrl", "typescriptUrl"}
	if len(links) != len(wantKeys) {
		t.Fatalf("Links() returned %d links, want %d", len(links), len(wantKeys))
	}
	for i, key := range wantKeys {
		if links[i].Key != key {
			t.Errorf("Links()[%d].Key = %q, want %q", i, links[i].Key, key)
		}
	}

	// Callers get a fresh slice
	links[0].URL = "https://example.com/"
	if GetVendorLinks().Links()[0].URL != "https://vuejs.org/" {
		t.Error("Links() should return a new slice on every call")
	}
}

func TestLookup(t *testing.T) {
	v := GetVendorLinks()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"react", "https://reactjs.org/", true},
		{"React", "https://reactjs.org/", true},
		{"reactUrl", "https://reactjs.org/", true},
		{"  TypeScript ", "https://www.typescriptlang.org/", true},
		{"asp.net", "https://www.asp.net/", true},
		{"aspNetUrl", "https://www.asp.net/", true},
		{"angular", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Lookup(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc.Site != GetSiteIdentity() {
		t.Error("NewDocument().Site does not match GetSiteIdentity()")
	}
	if doc.Vendors != GetVendorLinks() {
		t.Error("NewDocument().Vendors does not match GetVendorLinks()")
	}
}
