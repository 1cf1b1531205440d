package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the dashboard to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScrollUp
	ActionScrollDown
	ActionFilter
	ActionToggleHelp
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionScrollUp:
		return "scroll up"
	case ActionScrollDown:
		return "scroll down"
	case ActionFilter:
		return "filter"
	case ActionToggleHelp:
		return "help"
	default:
		return "none"
	}
}

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyFilter      = "/"
	KeyScrollUp    = "up"
	KeyScrollUpK   = "k"
	KeyScrollDown  = "down"
	KeyScrollDownJ = "j"
	KeyToggleHelp  = "?"
	KeySubmit      = "enter"
	KeyCancel      = "esc"
)

// KeyMap holds the dashboard key bindings. It implements help.KeyMap.
type KeyMap struct {
	Quit       key.Binding
	Filter     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(KeyQuit, KeyQuitAlt),
			key.WithHelp("q", "quit"),
		),
		Filter: key.NewBinding(
			key.WithKeys(KeyFilter),
			key.WithHelp("/", "filter"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys(KeyScrollUp, KeyScrollUpK),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys(KeyScrollDown, KeyScrollDownJ),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys(KeyToggleHelp),
			key.WithHelp("?", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys(KeySubmit),
			key.WithHelp("enter", "apply filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(KeyCancel),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.ScrollUp, k.ScrollDown, k.Filter, k.Help}
}

// FullHelp is shown in the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Filter, k.ScrollUp, k.ScrollDown, k.Help},
		{k.Submit, k.Cancel},
	}
}

// ActionFor maps a key press outside filter entry to an action.
func (k KeyMap) ActionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.ScrollUp):
		return ActionScrollUp
	case key.Matches(msg, k.ScrollDown):
		return ActionScrollDown
	case key.Matches(msg, k.Filter):
		return ActionFilter
	case key.Matches(msg, k.Help):
		return ActionToggleHelp
	default:
		return ActionNone
	}
}

// HandleAction applies a scroll or quit action to state. matched is the
// number of processes passing the filter and rows the viewport height.
// Filter and help actions leave the state unchanged; the model handles them.
func HandleAction(a Action, state ViewState, matched, rows int) (ViewState, bool) {
	switch a {
	case ActionQuit:
		return state, true
	case ActionScrollDown:
		if state.ScrollOffset < maxOffset(matched, rows) {
			state.ScrollOffset++
		}
	case ActionScrollUp:
		if state.ScrollOffset > 0 {
			state.ScrollOffset--
		}
	}
	return state, false
}

// ApplyFilter replaces the search term and scrolls back to the top. Text
// longer than MaxSearchLen runes is cut; empty text clears the filter.
func ApplyFilter(state ViewState, text string) ViewState {
	if r := []rune(text); len(r) > MaxSearchLen {
		text = string(r[:MaxSearchLen])
	}
	state.SearchTerm = text
	state.ScrollOffset = 0
	return state
}

// HandleKeyMsg processes keyboard input outside filter entry.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	// Help overlay swallows everything but toggle, quit and Esc
	if m.showHelp {
		switch {
		case action == ActionToggleHelp || key.Matches(msg, m.keys.Cancel):
			m.showHelp = false
			return true, nil
		case action != ActionQuit:
			return true, nil
		}
	}

	switch action {
	case ActionToggleHelp:
		m.showHelp = true
		return true, nil

	case ActionFilter:
		return true, m.startFilter()

	case ActionQuit, ActionScrollUp, ActionScrollDown:
		view, quit := HandleAction(action, m.state.View, m.view.Matched, m.availableRows())
		m.state.View = view
		if quit {
			m.phase = Terminated
			return true, tea.Quit
		}
		m.recompute()
		return true, nil
	}

	return false, nil
}
