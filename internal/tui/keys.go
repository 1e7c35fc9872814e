package tui

import "github.com/charmbracelet/bubbles/key"

// Raw key names used outside the pager key map.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
)

// PagerKeyMap binds keys to the pager affordances.
type PagerKeyMap struct {
	First        key.Binding
	Previous     key.Binding
	Next         key.Binding
	Last         key.Binding
	NextPageSize key.Binding
	PrevPageSize key.Binding
	OpenJump     key.Binding
	SubmitJump   key.Binding
	CancelJump   key.Binding
}

// DefaultPagerKeyMap returns the default bindings.
func DefaultPagerKeyMap() PagerKeyMap {
	return PagerKeyMap{
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		NextPageSize: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "bigger pages"),
		),
		PrevPageSize: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "smaller pages"),
		),
		OpenJump: key.NewBinding(
			key.WithKeys(":", "g"),
			key.WithHelp(":", "go to page"),
		),
		SubmitJump: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		CancelJump: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k PagerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.First, k.Last, k.PrevPageSize, k.NextPageSize, k.OpenJump}
}

// FullHelp implements help.KeyMap.
func (k PagerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Previous, k.Next, k.Last},
		{k.PrevPageSize, k.NextPageSize},
		{k.OpenJump, k.SubmitJump, k.CancelJump},
	}
}

// jumpKeyMap is the help shown while the jump input is open.
type jumpKeyMap struct {
	submit key.Binding
	cancel key.Binding
}

func (k jumpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}

func (k jumpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
