package i18n

import (
	"errors"
	"testing"
)

func TestDictionariesHaveIdenticalKeys(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatal(err)
	}
	if len(en) != len(hi) {
		t.Fatalf("len(en) = %d, len(hi) = %d", len(en), len(hi))
	}
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	for _, l := range Locales() {
		s := NewStore(l)
		if got := s.T("nonexistent.key"); got != "nonexistent.key" {
			t.Errorf("%s: T(nonexistent.key) = %q", l, got)
		}
	}
}

func TestSetLocaleSwitchesLookups(t *testing.T) {
	s := NewStore(English)
	if got := s.T("nav.home"); got != "Home" {
		t.Fatalf("T(nav.home) = %q, want Home", got)
	}
	if err := s.SetLocale(Hindi); err != nil {
		t.Fatalf("SetLocale(hi) error = %v", err)
	}
	if got := s.T("nav.home"); got != "होम" {
		t.Fatalf("T(nav.home) = %q after switching to hi", got)
	}
}

func TestSetLocaleRejectsUnknown(t *testing.T) {
	s := NewStore(Hindi)
	err := s.SetLocale("fr")
	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("SetLocale(fr) error = %v, want ErrUnsupportedLocale", err)
	}
	if s.Locale() != Hindi {
		t.Fatalf("Locale() = %s, want hi to be kept", s.Locale())
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"en", English, false},
		{" HI ", Hindi, false},
		{"de", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLocale(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLocale(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewStoreDefaultsToEnglish(t *testing.T) {
	if got := NewStore("xx").Locale(); got != English {
		t.Fatalf("NewStore(xx).Locale() = %s, want en", got)
	}
}

func TestDictionaryIsACopy(t *testing.T) {
	d := Dictionary(English)
	d["nav.home"] = "changed"
	if Lookup(English, "nav.home") != "Home" {
		t.Fatalf("mutating Dictionary() leaked into the catalog")
	}
}
