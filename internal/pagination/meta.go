package pagination

// Meta is a serialisable snapshot of a window and the values derived from it.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	StartItem   int  `json:"start_item"   yaml:"start_item"`
	EndItem     int  `json:"end_item"     yaml:"end_item"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates metadata for w.
func NewMeta(w Window) Meta {
	start, end := w.DisplayRange()
	return Meta{
		CurrentPage: w.CurrentPage,
		PageSize:    w.PageSize,
		TotalPages:  w.TotalPages,
		TotalItems:  w.TotalItems,
		StartItem:   start,
		EndItem:     end,
		HasPrevious: w.CurrentPage > 1,
		HasNext:     w.CurrentPage < w.TotalPages,
	}
}
