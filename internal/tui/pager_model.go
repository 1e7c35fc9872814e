package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagectl/internal/pagination"
)

const (
	// jumpInputWidth is the visible width of the jump-to-page input. Longer
	// text scrolls; the input has no character limit.
	jumpInputWidth = 8

	// indicatorPadding is reserved around the page indicator before it
	// falls back from dots to numbers.
	indicatorPadding = 4
)

// numberPrinter formats item counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var numberPrinter = message.NewPrinter(language.English)

// PageChangeMsg asks the owner to show Page.
type PageChangeMsg struct {
	Page int
}

// PageSizeChangeMsg asks the owner to switch to Size items per page.
type PageSizeChangeMsg struct {
	Size int
}

// outbox collects controller callbacks during one Update so they can be
// returned as commands. It is shared by every copy of a PagerModel.
type outbox struct {
	msgs []tea.Msg
}

func (o *outbox) drain() tea.Cmd {
	switch len(o.msgs) {
	case 0:
		return nil
	case 1:
		msg := o.msgs[0]
		o.msgs = nil
		return emit(msg)
	}
	cmds := make([]tea.Cmd, 0, len(o.msgs))
	for _, msg := range o.msgs {
		cmds = append(cmds, emit(msg))
	}
	o.msgs = nil
	return tea.Sequence(cmds...)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// PagerModel is a Bubble Tea component rendering a pagination control.
// It reports navigation intent as PageChangeMsg and PageSizeChangeMsg; the
// owner applies them and hands the new window back through SetWindow.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Update/View; setters mutate.
type PagerModel struct {
	ctrl  *pagination.Controller
	out   *outbox
	keys  PagerKeyMap
	help  help.Model
	input textinput.Model
	dots  paginator.Model
	width int
}

// NewPagerModel creates a pager for window with the given page-size choices.
// Empty options mean pagination.DefaultPageSizeOptions.
func NewPagerModel(window pagination.Window, pageSizeOptions []int, logger zerolog.Logger) PagerModel {
	out := &outbox{}

	input := textinput.New()
	input.Prompt = "Go to page: "
	input.Placeholder = "#"
	input.CharLimit = 0
	input.Width = jumpInputWidth

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.ActiveDot = SelectedStyle.Render("●")
	dots.InactiveDot = LabelStyle.Render("○")

	m := PagerModel{
		out:   out,
		keys:  DefaultPagerKeyMap(),
		help:  help.New(),
		input: input,
		dots:  dots,
	}
	m.ctrl = pagination.NewController(pagination.Props{
		Window:          window,
		PageSizeOptions: pageSizeOptions,
		OnPageChange: func(page int) {
			out.msgs = append(out.msgs, PageChangeMsg{Page: page})
		},
		OnPageSizeChange: func(size int) {
			out.msgs = append(out.msgs, PageSizeChangeMsg{Size: size})
		},
	}, pagination.WithLogger(logger))

	return m
}

// Init implements tea.Model.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and returns any navigation requests as commands.
func (m PagerModel) Update(msg tea.Msg) (PagerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.ctrl.Jump().Open {
			return m.handleJumpKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PagerModel) handleKey(msg tea.KeyMsg) (PagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.First):
		m.ctrl.First()
	case key.Matches(msg, m.keys.Previous):
		m.ctrl.Previous()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(msg, m.keys.Last):
		m.ctrl.Last()
	case key.Matches(msg, m.keys.NextPageSize):
		m.ctrl.RequestPageSize(m.adjacentPageSize(1))
	case key.Matches(msg, m.keys.PrevPageSize):
		m.ctrl.RequestPageSize(m.adjacentPageSize(-1))
	case key.Matches(msg, m.keys.OpenJump):
		if m.ctrl.OpenJump() {
			m.input.Reset()
			return m, m.input.Focus()
		}
	}
	return m, m.out.drain()
}

func (m PagerModel) handleJumpKey(msg tea.KeyMsg) (PagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SubmitJump):
		if m.ctrl.SubmitJump() {
			m.closeInput()
		}
		return m, m.out.drain()
	case key.Matches(msg, m.keys.CancelJump):
		m.ctrl.CancelJump()
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.UpdateJumpDraft(m.input.Value())
	return m, cmd
}

func (m *PagerModel) closeInput() {
	m.input.Reset()
	m.input.Blur()
}

// adjacentPageSize returns the option step places from the current size,
// wrapping around. A current size that is not an option starts from the first.
func (m PagerModel) adjacentPageSize(step int) int {
	opts := m.ctrl.PageSizeOptions()
	idx := slices.Index(opts, m.ctrl.Window().PageSize)
	if idx < 0 {
		return opts[0]
	}
	n := len(opts)
	return opts[((idx+step)%n+n)%n]
}

// SetWindow re-supplies the window after the owner applied a request.
func (m *PagerModel) SetWindow(w pagination.Window) {
	props := m.ctrl.Props()
	props.Window = w
	m.ctrl.SetProps(props)
}

// SetLoading enables or disables every affordance.
func (m *PagerModel) SetLoading(loading bool) {
	props := m.ctrl.Props()
	props.Loading = loading
	m.ctrl.SetProps(props)
}

// SetPageSizeOptions replaces the selectable page sizes.
func (m *PagerModel) SetPageSizeOptions(opts []int) {
	props := m.ctrl.Props()
	props.PageSizeOptions = opts
	m.ctrl.SetProps(props)
}

// Controller exposes the underlying interaction state.
func (m PagerModel) Controller() *pagination.Controller {
	return m.ctrl
}

// JumpOpen reports whether the jump input is shown.
func (m PagerModel) JumpOpen() bool {
	return m.ctrl.Jump().Open
}

// View renders the control.
func (m PagerModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderRange())
	sb.WriteString("\n")
	sb.WriteString(m.renderButtons())
	if indicator := m.renderIndicator(); indicator != "" {
		sb.WriteString("\n")
		sb.WriteString(indicator)
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderPageSizes())

	if m.ctrl.Jump().Open {
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		sb.WriteString(m.help.View(jumpKeyMap{submit: m.keys.SubmitJump, cancel: m.keys.CancelJump}))
	} else {
		sb.WriteString("\n")
		sb.WriteString(m.help.View(m.keys))
	}

	return sb.String()
}

// renderRange renders "Showing 21 - 25 of 25".
func (m PagerModel) renderRange() string {
	w := m.ctrl.Window()
	if w.TotalItems <= 0 {
		return InfoStyle.Render("No items")
	}

	start, end := m.ctrl.DisplayRange()
	line := LabelStyle.Render("Showing ") +
		ValueStyle.Render(numberPrinter.Sprintf("%d - %d", start, end)) +
		LabelStyle.Render(" of ") +
		ValueStyle.Render(numberPrinter.Sprintf("%d", w.TotalItems))

	if m.ctrl.Loading() {
		line += "  " + LoadingStyle.Render("loading…")
	}
	return line
}

func (m PagerModel) renderButtons() string {
	w := m.ctrl.Window()
	page := LabelStyle.Render(numberPrinter.Sprintf("Page %d of %d", w.CurrentPage, max(w.TotalPages, 1)))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		button("« First", m.ctrl.CanFirst()),
		button("‹ Prev", m.ctrl.CanPrevious()),
		" "+page+" ",
		button("Next ›", m.ctrl.CanNext()),
		button("Last »", m.ctrl.CanLast()),
	)
}

func button(label string, enabled bool) string {
	if enabled {
		return ButtonStyle.Render(label)
	}
	return DisabledButtonStyle.Render(label)
}

// renderIndicator shows one dot per page, switching to "x/y" when the dots
// would not fit the terminal width.
func (m PagerModel) renderIndicator() string {
	w := m.ctrl.Window()
	if w.TotalPages <= 1 {
		return ""
	}

	p := m.dots
	p.TotalPages = w.TotalPages
	p.Page = min(max(w.CurrentPage-1, 0), w.TotalPages-1)
	if m.width > 0 && w.TotalPages > m.width-indicatorPadding {
		p.Type = paginator.Arabic
	}
	return p.View()
}

func (m PagerModel) renderPageSizes() string {
	style := LabelStyle
	if !m.ctrl.CanChangePageSize() {
		style = DisabledButtonStyle.UnsetPadding()
	}

	current := m.ctrl.Window().PageSize
	opts := m.ctrl.PageSizeOptions()
	parts := make([]string, 0, len(opts))
	for _, size := range opts {
		label := numberPrinter.Sprintf("%d", size)
		if size == current {
			parts = append(parts, SelectedOptionStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, style.Render(label))
	}
	return style.Render("Per page: ") + strings.Join(parts, " ")
}
