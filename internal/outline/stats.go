package outline

import "github.com/docstruct/pdf-outline/internal/pdf"

// ComputeFontStatistics returns the arithmetic mean and maximum of the
// given font sizes. Over an empty collection it returns the zero value,
// which callers must treat as a degenerate scope and skip classification.
func ComputeFontStatistics(sizes []float64) FontStatistics {
	if len(sizes) == 0 {
		return FontStatistics{}
	}

	var sum float64
	maxSize := sizes[0]
	for _, size := range sizes {
		sum += size
		if size > maxSize {
			maxSize = size
		}
	}

	return FontStatistics{
		AverageSize: sum / float64(len(sizes)),
		MaxSize:     maxSize,
	}
}

// FragmentFontStatistics computes font statistics over a fragment
// collection. Used per page during title selection and document-wide for
// heading classification; the two scopes are never mixed.
func FragmentFontStatistics(fragments []pdf.StyledFragment) FontStatistics {
	sizes := make([]float64, 0, len(fragments))
	for _, frag := range fragments {
		sizes = append(sizes, frag.FontSize)
	}
	return ComputeFontStatistics(sizes)
}
