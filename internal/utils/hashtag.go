package utils

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{M}0-9_]+)`)

// ExtractHashtags returns the distinct hashtags of text in order of first
// appearance. Tags containing profanity are dropped: "#shit #pothole" -> ["#pothole"].
func ExtractHashtags(text string) []string {
	tags := hashtagRe.FindAllString(text, -1)
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		raw := strings.TrimPrefix(tag, "#")
		if MaskProfanity(raw) != raw {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
