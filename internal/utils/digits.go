package utils

import (
	"crypto/rand"
	"strings"
	"unicode"
)

// OnlyDigits strips every non-digit rune: "1234 5678 9012" -> "123456789012".
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RandomDigits returns n random decimal digits, leading zeros included.
func RandomDigits(n int) (string, error) {
	const digits = "0123456789"
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = digits[int(buf[i])%10]
	}
	return string(buf), nil
}

// MaskDigits keeps the last `keep` digits and groups the rest in fours:
// "123456789012" -> "XXXX XXXX 9012".
func MaskDigits(digits string, keep int) string {
	if digits == "" {
		return ""
	}
	if keep > len(digits) {
		keep = len(digits)
	}
	masked := strings.Repeat("X", len(digits)-keep) + digits[len(digits)-keep:]
	var b strings.Builder
	for i, r := range masked {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsBlank reports whether s is empty after trimming Unicode space.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
