package outline

// HeadingLevel is a coarse rank in the inferred document hierarchy.
type HeadingLevel string

const (
	LevelH1 HeadingLevel = "H1"
	LevelH2 HeadingLevel = "H2"
	LevelH3 HeadingLevel = "H3"
)

// IsValid checks if the heading level is one of the recognized ranks.
func (l HeadingLevel) IsValid() bool {
	switch l {
	case LevelH1, LevelH2, LevelH3:
		return true
	default:
		return false
	}
}

// Heading is one classified outline entry.
type Heading struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Result is the per-document artifact: the inferred title plus the
// deduplicated, ordered outline. It is created fresh per document and
// never mutated after return.
type Result struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// ErrorResult returns the canonical result emitted when a document cannot
// be opened or parsed. Batch processing writes it instead of failing.
func ErrorResult() *Result {
	return &Result{Title: "Error", Outline: []Heading{}}
}

// FontStatistics holds font size statistics over a fragment collection.
// The zero value marks a degenerate scope (no fragments); callers must
// skip classification rather than divide by zero.
type FontStatistics struct {
	AverageSize float64 `json:"average_size"`
	MaxSize     float64 `json:"max_size"`
}

// Degenerate reports whether the statistics were computed over an empty
// collection and are unusable for classification.
func (s FontStatistics) Degenerate() bool {
	return s.AverageSize <= 0
}

// titleCandidate is a transient scoring record used only to pick a title.
type titleCandidate struct {
	text     string
	fontSize float64
	page     int
	score    float64
}

// Thresholds collects the tunable constants of the classification
// heuristics. The values carry no derivation beyond observed behavior on
// real documents; treat them as calibration knobs, not precision.
type Thresholds struct {
	// Size-driven path. The path is only entered when the fragment's font
	// size exceeds AverageSize * SizeGate.
	SizeGate float64 `json:"size_gate"`

	// Ratio thresholds (fragment size / document average size).
	H1Ratio     float64 `json:"h1_ratio"`
	H2Ratio     float64 `json:"h2_ratio"`
	H3Ratio     float64 `json:"h3_ratio"`
	BoldH3Ratio float64 `json:"bold_h3_ratio"`

	// Absolute thresholds relative to the document maximum size.
	H1MaxShare float64 `json:"h1_max_share"`
	H2MaxShare float64 `json:"h2_max_share"`
	H3MaxShare float64 `json:"h3_max_share"`

	// Pattern-driven fallback path.
	PatternH1Ratio float64 `json:"pattern_h1_ratio"`
	PatternH2Ratio float64 `json:"pattern_h2_ratio"`

	// Heading text length bounds over the trimmed text.
	MinHeadingLength int `json:"min_heading_length"`
	MaxHeadingLength int `json:"max_heading_length"`

	// Title selection.
	TitleScanPages      int     `json:"title_scan_pages"`      // pages scanned for candidates
	TitleMaxPage        int     `json:"title_max_page"`        // candidates beyond this page are rejected
	TitleMinLength      int     `json:"title_min_length"`      // exclusive
	TitleMaxLength      int     `json:"title_max_length"`      // exclusive
	TitleLargeFontSize  float64 `json:"title_large_font_size"`
	TitleShortAllCaps   int     `json:"title_short_all_caps"` // all-caps tolerated below this length
	TitleBoldBonus      float64 `json:"title_bold_bonus"`
	TitleFirstPageBonus float64 `json:"title_first_page_bonus"`
	TitleMinIndicators  int     `json:"title_min_indicators"`
}

// DefaultThresholds returns the default classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SizeGate:            1.1,
		H1Ratio:             1.8,
		H2Ratio:             1.4,
		H3Ratio:             1.2,
		BoldH3Ratio:         1.1,
		H1MaxShare:          0.9,
		H2MaxShare:          0.7,
		H3MaxShare:          0.6,
		PatternH1Ratio:      1.4,
		PatternH2Ratio:      1.2,
		MinHeadingLength:    3,
		MaxHeadingLength:    200,
		TitleScanPages:      3,
		TitleMaxPage:        2,
		TitleMinLength:      5,
		TitleMaxLength:      200,
		TitleLargeFontSize:  14,
		TitleShortAllCaps:   50,
		TitleBoldBonus:      10,
		TitleFirstPageBonus: 5,
		TitleMinIndicators:  2,
	}
}

// FallbackTitle is returned when neither metadata nor the scanned pages
// yield a usable title candidate.
const FallbackTitle = "Document"
