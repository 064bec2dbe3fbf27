package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// patternRule is one lexical heading shape. Rules are evaluated in order,
// first match wins, so more specific shapes must precede generic ones.
type patternRule struct {
	name string
	re   *regexp.Regexp
}

// headingPatternRules is the ordered table of lexical shapes that mark a
// fragment as heading-like independent of its font size.
var headingPatternRules = []patternRule{
	{name: "numbered_item", re: regexp.MustCompile(`(?i)^\d+\.?\s+[A-Z]`)},
	{name: "chapter", re: regexp.MustCompile(`(?i)^Chapter\s+\d+`)},
	{name: "section", re: regexp.MustCompile(`(?i)^Section\s+\d+`)},
	{name: "part_roman", re: regexp.MustCompile(`(?i)^Part\s+[IVX]+`)},
	{name: "all_caps", re: regexp.MustCompile(`(?i)^[A-Z][A-Z\s]{5,}$`)},
	{name: "title_case", re: regexp.MustCompile(`(?i)^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*[.:]?$`)},
	{name: "decimal_numbering", re: regexp.MustCompile(`^\d+\.\d+`)},
}

// MatchesHeadingPattern reports whether the text has a heading-like lexical
// shape: either one of the pattern rules matches at the start of the trimmed
// text, or the generic short-phrase fallback holds.
func MatchesHeadingPattern(text string) bool {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return false
	}

	for _, rule := range headingPatternRules {
		if rule.re.MatchString(clean) {
			return true
		}
	}

	return matchesGenericShape(clean)
}

// matchesGenericShape is the fallback for headings with no recognizable
// numbering or casing convention: a short capitalized phrase that does not
// read as a sentence.
func matchesGenericShape(clean string) bool {
	if len(clean) <= 3 {
		return false
	}
	if len(strings.Fields(clean)) > 8 {
		return false
	}

	first := []rune(clean)[0]
	if !unicode.IsUpper(first) {
		return false
	}

	switch clean[len(clean)-1] {
	case '.', '!', '?':
		return false
	}

	return true
}

// matchedPatternRule returns the name of the first matching pattern rule,
// or empty if only the generic fallback (or nothing) applies. Used by tests
// to pin the rule ordering.
func matchedPatternRule(text string) string {
	clean := strings.TrimSpace(text)
	for _, rule := range headingPatternRules {
		if rule.re.MatchString(clean) {
			return rule.name
		}
	}
	return ""
}
