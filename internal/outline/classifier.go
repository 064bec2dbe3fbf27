package outline

import (
	"regexp"
	"strings"

	"github.com/docstruct/pdf-outline/internal/pdf"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Classifier decides, for each styled fragment, whether it is a heading
// and at which level. The decision is a pure function of the fragment and
// the document-wide font statistics, so classifying the same fragment
// twice always yields the same answer.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a classifier with the default thresholds.
func NewClassifier() *Classifier {
	return &Classifier{thresholds: DefaultThresholds()}
}

// NewClassifierWithThresholds creates a classifier with custom thresholds.
func NewClassifierWithThresholds(t Thresholds) *Classifier {
	return &Classifier{thresholds: t}
}

// Thresholds returns the active threshold table.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify labels a single fragment against document-wide statistics.
// It returns the heading entry and true, or the zero value and false when
// the fragment is not a heading. Statistics from a degenerate scope must
// not be passed in; callers skip classification for such documents.
func (c *Classifier) Classify(frag pdf.StyledFragment, stats FontStatistics) (Heading, bool) {
	text := strings.TrimSpace(frag.Text)
	if len(text) < c.thresholds.MinHeadingLength || len(text) > c.thresholds.MaxHeadingLength {
		return Heading{}, false
	}

	level, ok := c.sizeDrivenLevel(frag, stats)
	if !ok {
		level, ok = c.patternDrivenLevel(frag, text, stats)
	}
	if !ok {
		return Heading{}, false
	}

	return Heading{
		Level: level,
		Text:  normalizeWhitespace(text),
		Page:  frag.Page,
	}, true
}

// sizeDrivenLevel assigns a level from typographic prominence alone.
// Entered only for fragments noticeably larger than the document average;
// the rules run in strict priority order and the first match wins.
func (c *Classifier) sizeDrivenLevel(frag pdf.StyledFragment, stats FontStatistics) (HeadingLevel, bool) {
	t := c.thresholds

	if frag.FontSize <= stats.AverageSize*t.SizeGate {
		return "", false
	}

	ratio := 1.0
	if stats.AverageSize > 0 {
		ratio = frag.FontSize / stats.AverageSize
	}

	switch {
	case ratio >= t.H1Ratio || frag.FontSize >= stats.MaxSize*t.H1MaxShare:
		return LevelH1, true
	case ratio >= t.H2Ratio || frag.FontSize >= stats.MaxSize*t.H2MaxShare:
		return LevelH2, true
	case ratio >= t.H3Ratio || frag.FontSize >= stats.MaxSize*t.H3MaxShare:
		return LevelH3, true
	case frag.Bold && ratio >= t.BoldH3Ratio:
		return LevelH3, true
	default:
		return "", false
	}
}

// patternDrivenLevel assigns a level from lexical shape when typography
// was inconclusive. Entered only for bold fragments or those matching the
// heading pattern table; such fragments always receive at least H3.
func (c *Classifier) patternDrivenLevel(frag pdf.StyledFragment, text string, stats FontStatistics) (HeadingLevel, bool) {
	t := c.thresholds

	if !frag.Bold && !MatchesHeadingPattern(text) {
		return "", false
	}

	switch {
	case frag.FontSize >= stats.AverageSize*t.PatternH1Ratio:
		return LevelH1, true
	case frag.FontSize >= stats.AverageSize*t.PatternH2Ratio:
		return LevelH2, true
	default:
		return LevelH3, true
	}
}

// normalizeWhitespace collapses whitespace runs to single spaces and trims.
func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
