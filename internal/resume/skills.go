package resume

import (
	"sort"
	"strings"
	"unicode"
)

// RecognizeSkills scans extracted text (already lowercased) for taxonomy
// keywords and returns the title-cased matches, deduplicated and sorted
// case-insensitively.
//
// Matching is plain substring containment, so a keyword inside an
// unrelated larger word still hits (e.g. "r" inside "research"). Accepted
// imprecision, kept deliberately.
func RecognizeSkills(text string, keywords []string) []string {
	seen := make(map[string]struct{})
	found := []string{}
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			continue
		}
		name := titleCase(kw)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		found = append(found, name)
	}
	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	return found
}

// titleCase uppercases every letter that follows a non-letter and
// lowercases the rest, so "node.js" becomes "Node.Js" and "power bi"
// becomes "Power Bi".
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}
