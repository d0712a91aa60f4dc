package utils

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// ProfanityFilter masks banned words with '*' of the same rune length.
//   - ASCII words get word boundaries so they do not match inside other words.
//   - Devanagari words are matched as plain substrings; combining marks make
//     \b unreliable for them.
type ProfanityFilter struct {
	patterns []*regexp.Regexp
}

var (
	filterMu      sync.RWMutex
	defaultFilter = NewProfanityFilter(DefaultBannedWords)
)

// DefaultBannedWords is the starter list; SetExtraProfanityWords extends it.
var DefaultBannedWords = []string{
	"fuck", "fucking", "fucker", "motherfucker", "shit", "bullshit",
	"bastard", "bitch", "dick", "cock", "pussy", "cunt",
	"asshole", "dumbass", "jackass", "retard", "slut", "whore",
	"wanker", "twat", "prick", "arsehole", "bollocks",
	"dipshit", "shithead", "dumbfuck",

	"चूतिया", "चुतिया", "कमीना", "कमीने", "हरामी", "हरामखोर",
	"भड़वा", "भोसड़ी", "मादरचोद", "बहनचोद", "गांडू", "रंडी",
	"साला", "साले", "कुत्ते", "सूअर",
}

// MaskProfanity masks text with the default filter.
func MaskProfanity(s string) string {
	if s == "" {
		return s
	}
	filterMu.RLock()
	pf := defaultFilter
	filterMu.RUnlock()
	return pf.Mask(s)
}

// SetExtraProfanityWords rebuilds the default filter from DefaultBannedWords
// plus extra.
func SetExtraProfanityWords(extra []string) {
	words := append(append([]string{}, DefaultBannedWords...), extra...)
	pf := NewProfanityFilter(words)
	filterMu.Lock()
	defaultFilter = pf
	filterMu.Unlock()
}

func NewProfanityFilter(words []string) *ProfanityFilter {
	uniq := make([]string, 0, len(words))
	seen := map[string]struct{}{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	// longest first so a short word never masks part of a longer one
	sort.Slice(uniq, func(i, j int) bool {
		return len([]rune(uniq[i])) > len([]rune(uniq[j]))
	})
	pats := make([]*regexp.Regexp, 0, len(uniq))
	for _, w := range uniq {
		pattern := regexp.QuoteMeta(w)
		if isASCIIWord(w) {
			pattern = `(?i)\b` + pattern + `\b`
		}
		pats = append(pats, regexp.MustCompile(pattern))
	}
	return &ProfanityFilter{patterns: pats}
}

func (pf *ProfanityFilter) Mask(s string) string {
	if pf == nil || len(pf.patterns) == 0 || s == "" {
		return s
	}
	out := s
	for _, re := range pf.patterns {
		out = re.ReplaceAllStringFunc(out, func(m string) string {
			return strings.Repeat("*", len([]rune(m)))
		})
	}
	return out
}

// isASCIIWord reports whether \b boundaries make sense for s.
func isASCIIWord(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-')
	}) < 0
}
