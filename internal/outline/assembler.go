package outline

import (
	"sort"
	"strings"
)

// dedupKey identifies a heading for duplicate suppression. Text is
// compared case-insensitively so restated headings with different casing
// collapse to one entry.
type dedupKey struct {
	level HeadingLevel
	text  string
	page  int
}

// AssembleOutline deduplicates the classified headings and orders them
// into the final outline. First occurrence of each (level, text, page)
// wins. The result is sorted by page, then by case-sensitive text within
// a page; within-page entries therefore follow text order, not the
// original reading order.
func AssembleOutline(headings []Heading) []Heading {
	seen := make(map[dedupKey]struct{}, len(headings))
	unique := make([]Heading, 0, len(headings))

	for _, h := range headings {
		key := dedupKey{level: h.Level, text: strings.ToLower(h.Text), page: h.Page}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, h)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Page != unique[j].Page {
			return unique[i].Page < unique[j].Page
		}
		return unique[i].Text < unique[j].Text
	})

	return unique
}
