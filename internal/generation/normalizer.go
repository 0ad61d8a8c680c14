package generation

import (
	"strings"
	"unicode"
)

// Normalize strips code fences and surrounding whitespace from a raw model
// response. It knows nothing about the payload shape, never fails, and is
// idempotent: normalizing already-normalized text returns it unchanged.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")

	// A language tag other than json may still sit on the fence line.
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && isFenceTag(strings.TrimSpace(s[:nl])) {
		s = s[nl+1:]
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.Trim(strings.TrimSpace(s), "`")
}

func isFenceTag(tag string) bool {
	if tag == "" || len(tag) > 16 {
		return tag == ""
	}
	for _, r := range tag {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
