package pagination

// Window is the slice of data currently in view, as supplied by the owner.
type Window struct {
	// CurrentPage is the 1-based page number.
	CurrentPage int

	// TotalPages is the number of pages the owner computed for TotalItems.
	TotalPages int

	// PageSize is the number of items per page.
	PageSize int

	// TotalItems is the number of items across all pages.
	TotalItems int
}

// DisplayRange returns the 1-based index of the first and last item shown for w.
// The end index is clamped to TotalItems so a partially filled last page reports
// its true end.
//
//nolint:nonamedreturns // Named returns document which index is which.
func (w Window) DisplayRange() (start, end int) {
	start = (w.CurrentPage-1)*w.PageSize + 1
	end = w.CurrentPage * w.PageSize
	if end > w.TotalItems {
		end = w.TotalItems
	}
	return start, end
}

// IsFirst reports whether the window is on the first page.
func (w Window) IsFirst() bool {
	return w.CurrentPage == 1
}

// IsLast reports whether the window is on the last page.
func (w Window) IsLast() bool {
	return w.CurrentPage == w.TotalPages
}

// Contains reports whether page is a navigable page of w.
func (w Window) Contains(page int) bool {
	return page >= 1 && page <= w.TotalPages
}

// TotalPages returns the number of pages needed to show totalItems items at
// pageSize items per page. It returns 0 when there is nothing to show.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// NewWindow builds a window for page at pageSize over totalItems items,
// computing TotalPages the way an owner normally would.
func NewWindow(page, pageSize, totalItems int) Window {
	return Window{
		CurrentPage: page,
		TotalPages:  TotalPages(totalItems, pageSize),
		PageSize:    pageSize,
		TotalItems:  totalItems,
	}
}
