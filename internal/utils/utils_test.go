package utils

import (
	"reflect"
	"testing"
)

func TestOnlyDigits(t *testing.T) {
	tests := map[string]string{
		"1234 5678 9012": "123456789012",
		"12-34":          "1234",
		"abc":            "",
		"":               "",
		"٣12":            "12",
	}
	for in, want := range tests {
		if got := OnlyDigits(in); got != want {
			t.Errorf("OnlyDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRandomDigits(t *testing.T) {
	for _, n := range []int{0, 3, 4, 6} {
		got, err := RandomDigits(n)
		if err != nil {
			t.Fatalf("RandomDigits(%d) error = %v", n, err)
		}
		if len(got) != n || OnlyDigits(got) != got {
			t.Fatalf("RandomDigits(%d) = %q", n, got)
		}
	}
}

func TestMaskDigits(t *testing.T) {
	if got := MaskDigits("123456789012", 4); got != "XXXX XXXX 9012" {
		t.Fatalf("MaskDigits() = %q", got)
	}
	if got := MaskDigits("12", 4); got != "12" {
		t.Fatalf("MaskDigits(short) = %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", " "} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" x ") {
		t.Errorf("IsBlank(\" x \") = true")
	}
}

func TestMaskProfanity(t *testing.T) {
	f := NewProfanityFilter([]string{"shit", "साला"})
	tests := map[string]string{
		"this road is shit": "this road is ****",
		"Shit happens":      "**** happens",
		"shitake mushrooms": "shitake mushrooms",
		"अरे साला यह सड़क":    "अरे **** यह सड़क",
		"nothing to see here": "nothing to see here",
	}
	for in, want := range tests {
		if got := f.Mask(in); got != want {
			t.Errorf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("Huge #pothole near #MainSt, #shit again #Pothole")
	want := []string{"#pothole", "#MainSt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractHashtags() = %v, want %v", got, want)
	}
	if got := ExtractHashtags("no tags"); len(got) != 0 {
		t.Fatalf("ExtractHashtags(no tags) = %v", got)
	}
}

func TestSetExtraProfanityWords(t *testing.T) {
	t.Cleanup(func() { SetExtraProfanityWords(nil) })

	if got := MaskProfanity("what a rascal"); got != "what a rascal" {
		t.Fatalf("before: %q", got)
	}
	SetExtraProfanityWords([]string{"rascal", " "})
	if got := MaskProfanity("what a Rascal"); got != "what a ******" {
		t.Errorf("after: %q", got)
	}
	if got := MaskProfanity("shit happens"); got != "**** happens" {
		t.Errorf("default words lost: %q", got)
	}
}
