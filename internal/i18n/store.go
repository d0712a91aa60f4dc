// Package i18n holds the two static dictionaries and the per-session lookup
// store. A missing key always resolves to the key itself.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type Locale string

const (
	English Locale = "en"
	Hindi   Locale = "hi"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

var dictionaries = map[Locale]map[string]string{
	English: en,
	Hindi:   hi,
}

func Locales() []Locale { return []Locale{English, Hindi} }

func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dictionaries[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	return l, nil
}

// Lookup returns the string for key in locale, or key when absent.
func Lookup(l Locale, key string) string {
	if msg, ok := dictionaries[l][key]; ok {
		return msg
	}
	return key
}

// Dictionary returns a copy of the locale's entries.
func Dictionary(l Locale) map[string]string {
	src := dictionaries[l]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Validate reports keys that exist in one dictionary but not in another.
func Validate() error {
	var problems []string
	for _, a := range Locales() {
		for _, b := range Locales() {
			if a == b {
				continue
			}
			var missing []string
			for key := range dictionaries[a] {
				if _, ok := dictionaries[b][key]; !ok {
					missing = append(missing, key)
				}
			}
			if len(missing) > 0 {
				sort.Strings(missing)
				problems = append(problems, fmt.Sprintf("%s missing %s", b, strings.Join(missing, ", ")))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("i18n dictionaries differ: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Store is the active-locale view one session reads through.
type Store struct {
	mu     sync.RWMutex
	locale Locale
}

func NewStore(l Locale) *Store {
	if _, ok := dictionaries[l]; !ok {
		l = English
	}
	return &Store{locale: l}
}

func (s *Store) T(key string) string {
	return Lookup(s.Locale(), key)
}

func (s *Store) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

func (s *Store) SetLocale(l Locale) error {
	if _, ok := dictionaries[l]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, l)
	}
	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
	return nil
}
