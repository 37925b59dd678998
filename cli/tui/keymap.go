package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings. Tab switching and quit are global; the rest
// apply to the visible tab only.
type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding

	Submit key.Binding
	Reset  key.Binding

	Fetch key.Binding
	Paste key.Binding
	Clear key.Binding

	Copy     key.Binding
	WhatsApp key.Binding
	Telegram key.Binding
	Email    key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev tab"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "upload selected file"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
	Fetch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "download"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v", "ctrl+p"),
		key.WithHelp("ctrl+v", "paste identifier"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "clear"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy identifier"),
	),
	WhatsApp: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "share via WhatsApp"),
	),
	Telegram: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "share via Telegram"),
	),
	Email: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "share via email"),
	),
}
