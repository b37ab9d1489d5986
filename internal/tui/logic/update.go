// Package logic implements the screen controller: it turns key events into
// state mutations and screen transitions.
package logic

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist-tui/internal/logging"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

// KeyKind distinguishes key presses from key releases.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
)

// KeyEvent is one keyboard event read from the terminal.
type KeyEvent struct {
	Key  tea.KeyMsg
	Kind KeyKind
}

// Press wraps msg as a key press.
func Press(msg tea.KeyMsg) KeyEvent {
	return KeyEvent{Key: msg, Kind: KeyPress}
}

// Handler owns the state for the duration of the session and is the only
// writer to it.
type Handler struct {
	*state.State

	Logger    *log.Logger
	Notifier  Notifier
	Clipboard Clipboard
}

// NewHandler creates a Handler with the system clipboard and desktop
// notifier. A nil logger discards everything.
func NewHandler(s *state.State, logger *log.Logger) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{
		State:     s,
		Logger:    logger,
		Notifier:  DesktopNotifier{},
		Clipboard: SystemClipboard{},
	}
}

// Update processes one Bubble Tea message. It returns tea.Quit once the
// Exit screen is reached.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Bubble Tea v1 only delivers presses.
		h.Dispatch(Press(msg))

	case tea.WindowSizeMsg:
		h.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		// Mouse events are captured but not acted on.
	}

	if h.CurrentScreen == state.ScreenExit {
		return tea.Quit
	}
	return nil
}

// Dispatch applies one key event according to the current screen.
// Release events are discarded without touching the state.
func (h *Handler) Dispatch(ev KeyEvent) {
	if ev.Kind != KeyPress {
		return
	}

	before := h.CurrentScreen
	if h.ShowHelp {
		h.ShowHelp = false
		// Quit still quits; any other key only closes the overlay.
		if h.CurrentScreen != state.ScreenMain || !key.Matches(ev.Key, h.Keymap.Quit) {
			return
		}
	}

	switch h.CurrentScreen {
	case state.ScreenMain:
		h.handleMainKey(ev.Key)
	case state.ScreenAdd:
		h.handleAddKey(ev.Key)
	case state.ScreenEdit:
		h.handleEditKey(ev.Key)
	case state.ScreenExit:
	}

	if h.CurrentScreen != before {
		h.Logger.Debug("screen changed", "from", before, "to", h.CurrentScreen, "items", len(h.Items))
	}
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.Width = msg.Width
	h.Height = msg.Height
	h.HelpComp.SetSize(msg.Width, msg.Height)
}
