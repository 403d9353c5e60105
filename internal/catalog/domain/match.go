package domain

import "strings"

// NotesMatch reports whether notes contain every preference term and none of
// the dislike terms, case-insensitively. Both drivers use this so the
// recommendation semantics cannot drift between them.
func NotesMatch(notes string, preferences, dislikes []string) bool {
	haystack := strings.ToLower(notes)
	for _, pref := range preferences {
		if !strings.Contains(haystack, strings.ToLower(pref)) {
			return false
		}
	}
	for _, dislike := range dislikes {
		if strings.Contains(haystack, strings.ToLower(dislike)) {
			return false
		}
	}
	return true
}
