package pagination

import (
	"errors"
	"fmt"
)

// Validation limits for CLI supplied windows.
const (
	DefaultPage     = 1
	MinPage         = 1
	MinPageSize     = 1
	MaxPageSize     = 1000
	DefaultPageSize = 10
)

// Common validation errors.
var (
	ErrInvalidPage             = errors.New("page must be >= 1")
	ErrInvalidPageSize         = errors.New("page-size must be between 1 and 1000")
	ErrInvalidTotal            = errors.New("total must be non-negative")
	ErrEmptyPageSizes          = errors.New("page size options cannot be empty")
	ErrInvalidPageSizeOption   = errors.New("page size options must be positive")
	ErrDuplicatePageSizeOption = errors.New("page size options must be unique")
)

// Params holds window flags supplied on the command line.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of items per page.
	PageSize int

	// Total is the total number of items.
	Total int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate checks the parameters are within bounds.
// A page beyond the last page is allowed; the control tolerates it.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Total < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotal, p.Total)
	}
	return nil
}

// Window derives the window described by p.
func (p Params) Window() Window {
	return NewWindow(p.Page, p.PageSize, p.Total)
}

// ValidatePageSizeOptions rejects an empty list and non-positive or repeated
// entries. Order is preserved by callers and defines display order.
func ValidatePageSizeOptions(opts []int) error {
	if len(opts) == 0 {
		return ErrEmptyPageSizes
	}
	seen := make(map[int]struct{}, len(opts))
	for _, o := range opts {
		if o <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSizeOption, o)
		}
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatePageSizeOption, o)
		}
		seen[o] = struct{}{}
	}
	return nil
}
