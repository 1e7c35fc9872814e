package pagination

import (
	"slices"

	"github.com/rs/zerolog"
)

// DefaultPageSizeOptions are the selectable page sizes when the owner supplies none.
//
//nolint:gochecknoglobals // Read-only default, copied before use.
var DefaultPageSizeOptions = []int{10, 25, 50, 100}

// Props are the values the owner supplies on every render.
type Props struct {
	// Window is the page currently in view.
	Window Window

	// PageSizeOptions are the selectable sizes in display order.
	// Nil or empty means DefaultPageSizeOptions.
	PageSizeOptions []int

	// Loading disables every affordance while true.
	Loading bool

	// OnPageChange receives validated page requests.
	OnPageChange func(page int)

	// OnPageSizeChange receives validated page-size requests.
	OnPageSizeChange func(size int)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for rejected actions.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller translates user gestures into validated navigation requests.
// It holds only the jump input state; everything durable belongs to the owner.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	props  Props
	jump   JumpState
	logger zerolog.Logger
}

// NewController creates a controller with the given props and a closed jump input.
func NewController(props Props, opts ...Option) *Controller {
	c := &Controller{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	c.SetProps(props)
	return c
}

// SetProps replaces the owner supplied props. The jump input is left as is.
func (c *Controller) SetProps(props Props) {
	if len(props.PageSizeOptions) == 0 {
		props.PageSizeOptions = DefaultPageSizeOptions
	}
	props.PageSizeOptions = slices.Clone(props.PageSizeOptions)
	c.props = props
}

// Props returns the current props.
func (c *Controller) Props() Props {
	return c.props
}

// Window returns the current window.
func (c *Controller) Window() Window {
	return c.props.Window
}

// PageSizeOptions returns the selectable sizes in display order.
func (c *Controller) PageSizeOptions() []int {
	return slices.Clone(c.props.PageSizeOptions)
}

// Loading reports whether the owner marked the control as loading.
func (c *Controller) Loading() bool {
	return c.props.Loading
}

// Jump returns the jump input state.
func (c *Controller) Jump() JumpState {
	return c.jump
}

// DisplayRange returns the first and last item index shown for the current window.
//
//nolint:nonamedreturns // Named returns document which index is which.
func (c *Controller) DisplayRange() (start, end int) {
	return c.props.Window.DisplayRange()
}

// CanFirst reports whether the "first" affordance is enabled.
func (c *Controller) CanFirst() bool {
	return c.canStep(1)
}

// CanPrevious reports whether the "previous" affordance is enabled.
func (c *Controller) CanPrevious() bool {
	return c.canStep(c.props.Window.CurrentPage - 1)
}

// CanNext reports whether the "next" affordance is enabled.
func (c *Controller) CanNext() bool {
	return c.canStep(c.props.Window.CurrentPage + 1)
}

// CanLast reports whether the "last" affordance is enabled.
func (c *Controller) CanLast() bool {
	return c.canStep(c.props.Window.TotalPages)
}

// canStep reports whether a button targeting page is enabled. first and
// previous are disabled on page 1, next and last on the final page.
func (c *Controller) canStep(page int) bool {
	w := c.props.Window
	if c.props.Loading || page == w.CurrentPage {
		return false
	}
	if page < w.CurrentPage && w.IsFirst() {
		return false
	}
	if page > w.CurrentPage && w.IsLast() {
		return false
	}
	return w.Contains(page)
}

// CanChangePageSize reports whether the page-size selector is enabled.
func (c *Controller) CanChangePageSize() bool {
	return !c.props.Loading
}

// CanOpenJump reports whether the jump-to-page input may be opened.
func (c *Controller) CanOpenJump() bool {
	return !c.props.Loading && c.props.Window.TotalPages > 1
}

// First requests page 1.
func (c *Controller) First() bool {
	if !c.CanFirst() {
		return false
	}
	return c.RequestPage(1)
}

// Previous requests the page before the current one.
func (c *Controller) Previous() bool {
	if !c.CanPrevious() {
		return false
	}
	return c.RequestPage(c.props.Window.CurrentPage - 1)
}

// Next requests the page after the current one.
func (c *Controller) Next() bool {
	if !c.CanNext() {
		return false
	}
	return c.RequestPage(c.props.Window.CurrentPage + 1)
}

// Last requests the final page.
func (c *Controller) Last() bool {
	if !c.CanLast() {
		return false
	}
	return c.RequestPage(c.props.Window.TotalPages)
}

// RequestPage asks the owner to show target. It does nothing while loading,
// when target is already current, or when target is outside [1, TotalPages].
func (c *Controller) RequestPage(target int) bool {
	w := c.props.Window
	switch {
	case c.props.Loading:
		c.reject("page", target, "loading")
		return false
	case target == w.CurrentPage:
		c.reject("page", target, "already current")
		return false
	case !w.Contains(target):
		c.reject("page", target, "out of range")
		return false
	}

	c.emitPage(target)
	return true
}

// RequestPageSize asks the owner to switch to size and then to page 1, since
// the old offset may not exist at the new size. size must be one of the options.
func (c *Controller) RequestPageSize(size int) bool {
	if !c.CanChangePageSize() {
		c.reject("page size", size, "loading")
		return false
	}
	if !slices.Contains(c.props.PageSizeOptions, size) {
		c.reject("page size", size, "not an option")
		return false
	}

	if c.props.OnPageSizeChange != nil {
		c.props.OnPageSizeChange(size)
	}
	c.emitPage(1)
	return true
}

// OpenJump shows an empty jump-to-page input. Opening an input that is
// already open keeps its text.
func (c *Controller) OpenJump() bool {
	if !c.CanOpenJump() {
		return false
	}
	if !c.jump.Open {
		c.jump = JumpState{Open: true}
	}
	return true
}

// UpdateJumpDraft stores text as typed. Nothing is filtered until submit.
// The draft only exists while the input is open.
func (c *Controller) UpdateJumpDraft(text string) {
	if !c.jump.Open {
		return
	}
	c.jump.Draft = text
}

// SubmitJump requests the page typed into the jump input. A draft that is not
// numeric or not in [1, TotalPages] is ignored and the input stays open with
// its text intact.
func (c *Controller) SubmitJump() bool {
	if !c.jump.Open || c.props.Loading {
		return false
	}

	page, ok := ParseJumpTarget(c.jump.Draft)
	if !ok || page <= 0 || page > c.props.Window.TotalPages {
		c.logger.Debug().
			Str("draft", c.jump.Draft).
			Int("total_pages", c.props.Window.TotalPages).
			Msg("jump target rejected")
		return false
	}

	c.emitPage(page)
	c.jump = JumpState{}
	return true
}

// CancelJump closes the jump input and discards its text.
func (c *Controller) CancelJump() {
	c.jump = JumpState{}
}

func (c *Controller) emitPage(page int) {
	c.logger.Debug().Int("page", page).Msg("page change requested")
	if c.props.OnPageChange != nil {
		c.props.OnPageChange(page)
	}
}

func (c *Controller) reject(what string, value int, reason string) {
	c.logger.Debug().
		Str("action", what).
		Int("value", value).
		Str("reason", reason).
		Msg("navigation request ignored")
}
