package outline

import "testing"

func TestMatchesHeadingPattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"numbered with dot", "1. Introduction", true},
		{"numbered without dot", "2 Overview", true},
		{"chapter", "Chapter 3", true},
		{"chapter lowercase", "chapter 12", true},
		{"section", "Section 4", true},
		{"part roman", "Part IV", true},
		{"all caps", "BACKGROUND AND SCOPE", true},
		{"title case", "Getting Started:", true},
		{"decimal numbering", "1.1 Background", true},
		{"decimal alone", "2.3", true},
		{"generic short phrase", "Results at a glance", true},
		{"sentence", "This is a full sentence that ends with a period.", false},
		{"question", "What could go wrong?", false},
		{"lowercase with punctuation", "it's not a heading, just commentary", false},
		{"long with punctuation", "A long, rambling opening line that simply restates the abstract.", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesHeadingPattern(tt.text); got != tt.want {
				t.Errorf("MatchesHeadingPattern(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestPatternRuleOrder(t *testing.T) {
	// The table runs top to bottom with first-match-wins; these inputs pin
	// the priority between overlapping rules.
	tests := []struct {
		text string
		rule string
	}{
		{"1. Introduction", "numbered_item"},
		{"Chapter 7", "chapter"},
		{"Section 2", "section"},
		{"Part III", "part_roman"},
		{"HEADING TEXT", "all_caps"},
		// Case-insensitive matching makes the all-caps rule cover any
		// letters-and-spaces run, so it wins over title_case here.
		{"Plain Title Case", "all_caps"},
		// The trailing colon is only allowed by the title_case rule.
		{"Getting Started:", "title_case"},
		{"3.1 Methods", "decimal_numbering"},
	}

	for _, tt := range tests {
		if got := matchedPatternRule(tt.text); got != tt.rule {
			t.Errorf("matchedPatternRule(%q) = %q, want %q", tt.text, got, tt.rule)
		}
	}
}

func TestGenericShapeFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"short capitalized phrase", "Key findings, per region", true},
		{"ends with period", "Key findings, per region.", false},
		{"too short", "Key", false},
		{"nine words", "One, two, three, four, five, six, seven eight nine", false},
		{"lowercase start", "key findings, per region", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesGenericShape(tt.text); got != tt.want {
				t.Errorf("matchesGenericShape(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
