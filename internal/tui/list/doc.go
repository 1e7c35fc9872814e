// Package listview renders the rows of one page for Bubble Tea applications.
//
// The owner of a pagination control hands the model the items of the page in
// view together with their offset in the full dataset. The model keeps a row
// selection, scrolls within the viewport when the page is taller than the
// terminal, and numbers rows by their absolute position:
//   - Keyboard navigation (up/down, j/k)
//   - Only rows inside the viewport plus a small buffer are rendered
//   - Selection resets to the top whenever a new page is installed
package listview
