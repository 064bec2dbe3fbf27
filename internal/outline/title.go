package outline

import (
	"strings"

	"github.com/docstruct/pdf-outline/internal/pdf"
)

// titleLexicon contains words whose presence marks a fragment as
// title-like regardless of its formatting.
var titleLexicon = []string{"introduction", "overview", "guide", "manual", "report"}

// TitleSelector guesses the document title from declared metadata or,
// failing that, from the typography of the first few pages.
type TitleSelector struct {
	thresholds Thresholds
}

// NewTitleSelector creates a title selector with the default thresholds.
func NewTitleSelector() *TitleSelector {
	return &TitleSelector{thresholds: DefaultThresholds()}
}

// NewTitleSelectorWithThresholds creates a title selector with custom thresholds.
func NewTitleSelectorWithThresholds(t Thresholds) *TitleSelector {
	return &TitleSelector{thresholds: t}
}

// Select returns the best title guess. A usable metadata title is
// authoritative and short-circuits the page scan. pages holds the
// fragments of the first pages, outermost index 0 = page 1; passing more
// pages than the scan window is fine, the excess is ignored.
func (ts *TitleSelector) Select(metadataTitle string, pages [][]pdf.StyledFragment) string {
	t := ts.thresholds

	if meta := strings.TrimSpace(metadataTitle); len(meta) > t.TitleMinLength && len(meta) < t.TitleMaxLength {
		return meta
	}

	best, found := ts.bestCandidate(pages)
	if !found {
		return FallbackTitle
	}
	return best.text
}

// bestCandidate scans the pages in order and keeps the highest-scoring
// candidate. Ties keep the earlier candidate: selection is stable in
// page-then-fragment order, no re-sorting.
func (ts *TitleSelector) bestCandidate(pages [][]pdf.StyledFragment) (titleCandidate, bool) {
	t := ts.thresholds

	var best titleCandidate
	found := false

	scanPages := len(pages)
	if scanPages > t.TitleScanPages {
		scanPages = t.TitleScanPages
	}

	for i := 0; i < scanPages; i++ {
		pageStats := FragmentFontStatistics(pages[i])
		if pageStats.Degenerate() {
			continue
		}

		pageNum := i + 1
		for _, frag := range pages[i] {
			text := strings.TrimSpace(frag.Text)
			if !ts.isTitleCandidate(text, frag.FontSize, frag.Bold, pageNum) {
				continue
			}

			cand := titleCandidate{
				text:     text,
				fontSize: frag.FontSize,
				page:     pageNum,
				score:    ts.score(frag.FontSize, frag.Bold, pageNum),
			}
			if !found || cand.score > best.score {
				best = cand
				found = true
			}
		}
	}

	return best, found
}

// isTitleCandidate applies the title-candidacy test: early page, sane
// length, and at least TitleMinIndicators of the four title indicators.
func (ts *TitleSelector) isTitleCandidate(text string, fontSize float64, bold bool, pageNum int) bool {
	t := ts.thresholds

	if pageNum > t.TitleMaxPage {
		return false
	}
	if len(text) <= t.TitleMinLength || len(text) >= t.TitleMaxLength {
		return false
	}

	indicators := 0
	if !isAllUpper(text) || len(text) < t.TitleShortAllCaps {
		indicators++
	}
	if containsTitleWord(text) {
		indicators++
	}
	if fontSize > t.TitleLargeFontSize {
		indicators++
	}
	if bold {
		indicators++
	}

	return indicators >= t.TitleMinIndicators
}

// score ranks title candidates: bigger fonts win, boldness and first-page
// placement add fixed bonuses.
func (ts *TitleSelector) score(fontSize float64, bold bool, pageNum int) float64 {
	score := fontSize
	if bold {
		score += ts.thresholds.TitleBoldBonus
	}
	if pageNum == 1 {
		score += ts.thresholds.TitleFirstPageBonus
	}
	return score
}

// containsTitleWord reports a case-insensitive substring match against the
// title lexicon.
func containsTitleWord(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range titleLexicon {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether the text equals its upper-cased form while
// containing at least one cased character, mirroring Python's str.isupper.
func isAllUpper(text string) bool {
	return text != strings.ToLower(text) && text == strings.ToUpper(text)
}
