package i18n

import "testing"

func testTables() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"home.title":    "Welcome",
			"notices.title": "Notices",
		},
		"yo": {
			"home.title": "Kaabo",
		},
	}
}

func TestLookupFallbackChain(t *testing.T) {
	svc := NewService("en", testTables())

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{"direct hit", "yo", "home.title", "Kaabo"},
		{"missing key falls back to default locale", "yo", "notices.title", "Notices"},
		{"unknown locale falls back to default", "zz", "home.title", "Welcome"},
		{"unknown key resolves to itself", "en", "missing.key", "missing.key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Lookup(tt.locale, tt.key); got != tt.want {
				t.Errorf("Lookup(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestTablesAreFrozenAtConstruction(t *testing.T) {
	input := testTables()
	svc := NewService("en", input)

	// Mutating the input after construction must not leak into lookups.
	input["en"]["home.title"] = "tampered"
	input["yo"]["home.title"] = "tampered"

	if got := svc.Lookup("en", "home.title"); got != "Welcome" {
		t.Errorf("Lookup after input mutation = %q, want the frozen value", got)
	}
	if got := svc.Lookup("yo", "home.title"); got != "Kaabo" {
		t.Errorf("Lookup after input mutation = %q, want the frozen value", got)
	}
}

func TestTableMergesOverDefault(t *testing.T) {
	svc := NewService("en", testTables())

	table := svc.Table("yo")
	if table["home.title"] != "Kaabo" {
		t.Errorf("home.title = %q, want the localized value", table["home.title"])
	}
	if table["notices.title"] != "Notices" {
		t.Errorf("notices.title = %q, want the default-locale fill", table["notices.title"])
	}

	// The returned map is a copy; callers cannot poison later reads.
	table["home.title"] = "tampered"
	if got := svc.Table("yo")["home.title"]; got != "Kaabo" {
		t.Errorf("Table after caller mutation = %q, want Kaabo", got)
	}
}

func TestLocalesListIsCopied(t *testing.T) {
	svc := NewService("en", testTables())

	locales := svc.Locales()
	if len(locales) != len(SupportedLocales) {
		t.Fatalf("got %d locales, want %d", len(locales), len(SupportedLocales))
	}
	locales[0].Code = "tampered"
	if svc.Locales()[0].Code == "tampered" {
		t.Error("mutating the returned list changed the supported set")
	}
}
