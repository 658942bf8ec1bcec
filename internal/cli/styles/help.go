package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlaygroundKeyMap defines keybindings for the layout playground.
type PlaygroundKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Add    key.Binding
	Remove key.Binding
	Swap   key.Binding
	Ratio  key.Binding
	Resync key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Next, k.Swap, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Add, k.Remove, k.Swap},
		{k.Ratio, k.Resync},
		{k.Help, k.Quit},
	}
}

// DefaultPlaygroundKeyMap returns the default playground keybindings.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "j", "down"),
			key.WithHelp("tab/j", "focus next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "k", "up"),
			key.WithHelp("S-tab/k", "focus prev"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add window"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "remove focused"),
		),
		Swap: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "swap with next"),
		),
		Ratio: key.NewBinding(
			key.WithKeys("+", "-"),
			key.WithHelp("+/-", "ratio hint"),
		),
		Resync: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resync"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp creates a help model styled with the theme.
func NewHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.Subtle
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = theme.Subtle
	return h
}
