package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the dice picker.
// It lives in pkg/types so the model and the help footer share it.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Roll     key.Binding // Disabled until a die is selected
	Quit     key.Binding
}

// DefaultKeyMap returns Left/Right to move, Enter to roll and q/Q/Esc to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("<Left>", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("<Right>", "Next"),
		),
		Roll: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("<Enter>", "Roll die"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("<Q>", "Quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Roll, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Previous, k.Next}, {k.Roll, k.Quit}}
}
