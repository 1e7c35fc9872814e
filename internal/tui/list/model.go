package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows to render above/below viewport for smooth scrolling.
const defaultBufferSize = 2

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders one row. index is the item's 0-based position in the
// full dataset, not within the page.
type RenderFunc[T any] func(item T, index int, selected bool) string

// PageListModel shows the items of a single page with a movable selection.
type PageListModel[T any] struct {
	// items holds the rows of the page in view
	items []T

	// offset is the dataset index of items[0]
	offset int

	renderFunc RenderFunc[T]

	// selected is the selected row within the page (0-based)
	selected int

	// visibleFrom/visibleTo bound the rows inside the viewport (to is exclusive)
	visibleFrom int
	visibleTo   int

	height     int
	width      int
	bufferSize int
}

// NewPageListModel creates a list for the given viewport.
func NewPageListModel[T any](height, width int, renderFunc RenderFunc[T]) *PageListModel[T] {
	m := &PageListModel[T]{
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}
	m.updateVisibleRange()
	return m
}

// SetPage installs the rows of a newly loaded page starting at dataset index offset.
func (m *PageListModel[T]) SetPage(items []T, offset int) {
	m.items = items
	m.offset = offset
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize resizes the viewport.
func (m *PageListModel[T]) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.updateVisibleRange()
}

// Init initializes the model (required for tea.Model interface).
func (m *PageListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles row navigation keys.
func (m *PageListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

// handleKeyMsg moves the selection. Page-level keys belong to the pager.
func (m *PageListModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.String() {
	case "up", "k":
		m.SetSelected(m.selected - 1)
	case "down", "j":
		m.SetSelected(m.selected + 1)
	}
}

// updateVisibleRange keeps the selected row inside the viewport, centred when possible.
func (m *PageListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 || m.height <= 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	half := m.height / halfViewportDivisor
	from := m.selected - half
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the rows in the viewport.
func (m *PageListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	from := max(m.visibleFrom-m.bufferSize, 0)
	to := min(m.visibleTo+m.bufferSize, len(m.items))
	if m.height <= 0 {
		from, to = 0, len(m.items)
	}

	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, m.renderFunc(m.items[i], m.offset+i, i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// ItemCount returns the number of rows on the page.
func (m *PageListModel[T]) ItemCount() int {
	return len(m.items)
}

// Offset returns the dataset index of the first row.
func (m *PageListModel[T]) Offset() int {
	return m.offset
}

// Selected returns the selected row within the page.
func (m *PageListModel[T]) Selected() int {
	return m.selected
}

// SetSelected selects index, clamped to the page.
func (m *PageListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// VisibleFrom returns the first row inside the viewport.
func (m *PageListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns one past the last row inside the viewport.
func (m *PageListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// SelectedItem returns the selected row, or nil for an empty page.
func (m *PageListModel[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
