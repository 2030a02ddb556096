package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeySend KeyName = iota
	KeyNewline
	KeyBounds
	KeyFiller
	KeyCopy
	KeyClear
	KeyTab
	KeyScrollUp
	KeyScrollDown
	KeyUp
	KeyDown
	KeyEsc
	KeyQuit
)

// GlobalkeyBindings is a global, immutable map. New key bindings must be
// added here.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeySend: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	KeyNewline: key.NewBinding(
		key.WithKeys("alt+enter", "ctrl+j"),
		key.WithHelp("alt+enter", "newline"),
	),
	KeyBounds: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "bounds"),
	),
	KeyFiller: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "filler"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy draft"),
	),
	KeyClear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	KeyScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	KeyScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// GlobalKeyStringsMap maps key strings to their KeyName. It is built from
// GlobalkeyBindings at init so the two can never drift.
var GlobalKeyStringsMap = map[string]KeyName{}

func init() {
	for name, binding := range GlobalkeyBindings {
		for _, k := range binding.Keys() {
			GlobalKeyStringsMap[k] = name
		}
	}
}
