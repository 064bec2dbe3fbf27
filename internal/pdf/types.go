package pdf

// StyledFragment is one run of text sharing a single font and size, the
// smallest unit the outline classifier reasons about. Page numbers are
// 1-indexed.
type StyledFragment struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
	Bold     bool    `json:"bold"`
	Page     int     `json:"page"`
}

// FileInfo represents information about a PDF file found during a
// directory scan.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}
