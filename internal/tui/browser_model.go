package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/pagectl/internal/pagination"
	listview "github.com/rshade/pagectl/internal/tui/list"
)

// ViewState is the lifecycle state of the browser.
type ViewState int

const (
	// ViewStateList shows the current page.
	ViewStateList ViewState = iota
	// ViewStateQuitting is set once the user asked to leave.
	ViewStateQuitting
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// pagerHeight is the number of lines the pager occupies below the list.
	pagerHeight = 7

	// minListHeight is the smallest list viewport.
	minListHeight = 3
)

// pageLoadedMsg reports that the simulated fetch for a page finished.
type pageLoadedMsg struct {
	seq  int
	page int
}

// BrowserConfig configures a BrowserModel.
type BrowserConfig struct {
	// Items is the dataset being paged.
	Items []string

	// Page is the initial page.
	Page int

	// PageSize is the initial page size.
	PageSize int

	// PageSizeOptions are the selectable sizes.
	PageSizeOptions []int

	// Latency simulates the time the data source takes to return a page.
	Latency time.Duration

	Logger zerolog.Logger
}

// BrowserModel owns a dataset and the durable page state, and renders it
// through a PagerModel. Navigation requests from the pager are applied after
// a simulated fetch during which the pager is marked as loading.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	state   ViewState
	items   []string
	window  pagination.Window
	latency time.Duration

	// fetchSeq identifies the latest fetch so stale results are dropped.
	fetchSeq int
	loading  bool

	pager        PagerModel
	list         *listview.PageListModel[string]
	loadingState *LoadingState

	width  int
	height int
	logger zerolog.Logger
}

// NewBrowserModel creates a browser showing cfg.Page of cfg.Items.
func NewBrowserModel(cfg BrowserConfig) BrowserModel {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	page := max(cfg.Page, 1)

	window := pagination.NewWindow(page, pageSize, len(cfg.Items))

	m := BrowserModel{
		state:        ViewStateList,
		items:        cfg.Items,
		window:       window,
		latency:      cfg.Latency,
		pager:        NewPagerModel(window, cfg.PageSizeOptions, cfg.Logger),
		list:         listview.NewPageListModel(defaultHeight-pagerHeight, defaultWidth, renderRow),
		loadingState: NewLoadingState(),
		width:        defaultWidth,
		height:       defaultHeight,
		logger:       cfg.Logger,
	}
	m.installPage()
	return m
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(max(m.height-pagerHeight-1, minListHeight), m.width)
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd

	case PageSizeChangeMsg:
		m.logger.Debug().Int("size", msg.Size).Msg("page size changed")
		// The page request that follows a size change targets page 1; apply
		// it now so the window stays valid while that page loads.
		m.window = pagination.NewWindow(1, msg.Size, len(m.items))
		m.pager.SetWindow(m.window)
		return m, nil

	case PageChangeMsg:
		return m.startFetch(msg.Page)

	case pageLoadedMsg:
		return m.handlePageLoaded(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.loading {
		return m, m.loadingState.Update(msg)
	}
	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC || (msg.String() == keyQuit && !m.pager.JumpOpen()) {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	if !m.pager.JumpOpen() {
		switch msg.String() {
		case "up", "down", "j", "k":
			m.list.Update(msg)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

// startFetch marks the pager as loading and schedules the page.
func (m BrowserModel) startFetch(page int) (tea.Model, tea.Cmd) {
	m.fetchSeq++
	seq := m.fetchSeq
	m.logger.Debug().Int("page", page).Int("seq", seq).Msg("fetching page")

	if m.latency <= 0 {
		return m.handlePageLoaded(pageLoadedMsg{seq: seq, page: page}), nil
	}

	m.loading = true
	m.pager.SetLoading(true)
	m.loadingState.SetMessage(numberPrinter.Sprintf("Loading page %d...", page))
	fetch := tea.Tick(m.latency, func(time.Time) tea.Msg {
		return pageLoadedMsg{seq: seq, page: page}
	})
	return m, tea.Batch(fetch, m.loadingState.Init())
}

func (m BrowserModel) handlePageLoaded(msg pageLoadedMsg) BrowserModel {
	if msg.seq != m.fetchSeq {
		return m
	}

	m.loading = false
	m.pager.SetLoading(false)
	m.window.CurrentPage = msg.page
	m.pager.SetWindow(m.window)
	m.installPage()
	return m
}

// installPage hands the rows of the current window to the list.
func (m *BrowserModel) installPage() {
	start, end := m.window.DisplayRange()
	from := min(max(start-1, 0), len(m.items))
	to := min(max(end, from), len(m.items))
	m.list.SetPage(m.items[from:to], from)
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("pagectl"))
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(RenderLoading(m.loadingState))
	case m.list.ItemCount() == 0:
		sb.WriteString(InfoStyle.Render("Nothing to show."))
	default:
		sb.WriteString(m.list.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.pager.View())
	return sb.String()
}

// Window returns the page state owned by the browser.
func (m BrowserModel) Window() pagination.Window {
	return m.window
}

// Loading reports whether a page fetch is in flight.
func (m BrowserModel) Loading() bool {
	return m.loading
}

// State returns the lifecycle state.
func (m BrowserModel) State() ViewState {
	return m.state
}

func renderRow(item string, index int, selected bool) string {
	line := fmt.Sprintf("%6s  %s", numberPrinter.Sprintf("%d", index+1), item)
	if selected {
		return SelectedStyle.Render("▸" + line)
	}
	return ValueStyle.UnsetBold().Render(" " + line)
}

// SampleItems builds n synthetic rows for the browser.
func SampleItems(n int) []string {
	items := make([]string, max(n, 0))
	for i := range items {
		items[i] = fmt.Sprintf("Item %s", numberPrinter.Sprintf("%d", i+1))
	}
	return items
}
