package ui

import (
	"strings"

	"flexarea/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateComposing MenuState = iota
	StateOverlay
)

type Menu struct {
	options       []keys.KeyName
	height, width int
	state         MenuState

	// actionGroupEnd marks where the action group (highlighted bindings)
	// stops in options.
	actionGroupEnd int

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var composingMenuOptions = []keys.KeyName{
	keys.KeySend, keys.KeyNewline,
	keys.KeyBounds, keys.KeyFiller, keys.KeyCopy, keys.KeyClear,
	keys.KeyTab, keys.KeyQuit,
}

var overlayMenuOptions = []keys.KeyName{
	keys.KeyUp, keys.KeyDown, keys.KeySend, keys.KeyEsc,
}

func NewMenu() *Menu {
	return &Menu{
		options:        composingMenuOptions,
		state:          StateComposing,
		actionGroupEnd: 2,
		keyDown:        -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateOverlay:
		m.options = overlayMenuOptions
		m.actionGroupEnd = len(overlayMenuOptions)
	default:
		m.options = composingMenuOptions
		m.actionGroupEnd = 2
	}
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	for i, k := range m.options {
		binding := keys.GlobalkeyBindings[k]

		var (
			localActionStyle = actionGroupStyle
			localKeyStyle    = keyStyle
			localDescStyle   = descStyle
		)
		if m.keyDown == k {
			localActionStyle = localActionStyle.Underline(true)
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		if i < m.actionGroupEnd {
			s.WriteString(localActionStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localActionStyle.Render(binding.Help().Desc))
		} else {
			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))
		}

		if i != len(m.options)-1 {
			if i == m.actionGroupEnd-1 {
				s.WriteString(sepStyle.Render(verticalSeparator))
			} else {
				s.WriteString(sepStyle.Render(separator))
			}
		}
	}

	menuText := s.String()

	// On narrow terminals the single-row menu overflows; drop trailing
	// bindings until it fits.
	for visibleWidth(menuText) > m.width && strings.Contains(menuText, separator) {
		idx := strings.LastIndex(menuText, sepStyle.Render(separator))
		menuText = menuText[:idx]
	}

	centeredMenuText := menuStyle.Render(menuText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}
