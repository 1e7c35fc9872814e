package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(item string, index int, selected bool) string {
	marker := " "
	if selected {
		marker = ">"
	}
	return fmt.Sprintf("%s%d %s", marker, index+1, item)
}

func pageOf(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	return items
}

// TestPageListModel_SetPage verifies installing a page resets the selection.
func TestPageListModel_SetPage(t *testing.T) {
	m := NewPageListModel(20, 80, numbered)
	assert.Equal(t, 0, m.ItemCount())
	assert.Empty(t, m.View())
	assert.Nil(t, m.SelectedItem())

	m.SetPage([]string{"a", "b", "c"}, 20)
	m.SetSelected(2)
	require.Equal(t, 2, m.Selected())

	m.SetPage([]string{"d", "e"}, 30)
	assert.Equal(t, 0, m.Selected(), "new page resets selection")
	assert.Equal(t, 30, m.Offset())
	assert.Equal(t, "d", *m.SelectedItem())
}

// TestPageListModel_ViewNumbersByDatasetIndex verifies rows are numbered across pages.
func TestPageListModel_ViewNumbersByDatasetIndex(t *testing.T) {
	m := NewPageListModel(20, 80, numbered)
	m.SetPage([]string{"x", "y"}, 20)

	assert.Equal(t, ">21 x\n 22 y", m.View())
}

// TestPageListModel_VisibleRange checks viewport centring.
func TestPageListModel_VisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		height     int
		selected   int
		expectFrom int
		expectTo   int
	}{
		{"top of page", 100, 20, 0, 0, 20},
		{"middle of page", 100, 20, 50, 40, 60},
		{"bottom of page", 100, 20, 99, 80, 100},
		{"page shorter than viewport", 10, 20, 5, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPageListModel(tt.height, 80, numbered)
			m.SetPage(pageOf(tt.rows), 0)
			m.SetSelected(tt.selected)

			assert.Equal(t, tt.expectFrom, m.VisibleFrom())
			assert.Equal(t, tt.expectTo, m.VisibleTo())
		})
	}
}

// TestPageListModel_KeyNavigation verifies selection movement and clamping.
func TestPageListModel_KeyNavigation(t *testing.T) {
	m := NewPageListModel(5, 80, numbered)
	m.SetPage(pageOf(3), 0)

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	m.Update(down)
	assert.Equal(t, 1, m.Selected())
	m.Update(j)
	assert.Equal(t, 2, m.Selected())
	m.Update(j)
	assert.Equal(t, 2, m.Selected(), "selection stops at the last row")
	m.Update(k)
	assert.Equal(t, 1, m.Selected())
	m.Update(up)
	m.Update(up)
	assert.Equal(t, 0, m.Selected(), "selection stops at the first row")
}

// TestPageListModel_ViewRendersOnlyViewportAndBuffer verifies off-screen rows are skipped.
func TestPageListModel_ViewRendersOnlyViewportAndBuffer(t *testing.T) {
	m := NewPageListModel(4, 80, numbered)
	m.SetPage(pageOf(50), 0)
	m.SetSelected(25)

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 4+2*defaultBufferSize)
	assert.Contains(t, m.View(), ">26 item-25")
}

// TestPageListModel_Resize verifies SetSize recomputes the viewport.
func TestPageListModel_Resize(t *testing.T) {
	m := NewPageListModel(0, 0, numbered)
	m.SetPage(pageOf(3), 0)
	assert.Len(t, strings.Split(m.View(), "\n"), 3, "zero height renders the whole page")

	m.SetSize(2, 40)
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 2, m.VisibleTo())
}
