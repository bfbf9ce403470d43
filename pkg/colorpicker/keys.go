package colorpicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings shared by the color picker components.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding

	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	LeftFast  key.Binding
	RightFast key.Binding
	UpFast    key.Binding
	DownFast  key.Binding

	Start key.Binding
	End   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "brighter")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "darker")),
		LeftFast:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "decrease more")),
		RightFast: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "increase more")),
		UpFast:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "brighter more")),
		DownFast:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "darker more")),
		Start:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Left, k.Right}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Left, k.Right, k.Up, k.Down},
		{k.LeftFast, k.RightFast, k.UpFast, k.DownFast},
		{k.Start, k.End},
	}
}
