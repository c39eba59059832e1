package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vazpera/supermarket/internal/logger"
	"github.com/Vazpera/supermarket/internal/metrics"
)

// paneCount is the number of selectable panes the focus index cycles over.
const paneCount = 3

// Model is the Bubble Tea model for the dashboard. It owns the interaction
// state and the current snapshot; rendering only ever reads them.
type Model struct {
	provider metrics.Provider
	log      logger.Logger
	keys     KeyMap

	snapshot *metrics.Snapshot
	width    int
	height   int

	// Interaction state. pane is cyclic in [0,3) via wraparound arithmetic;
	// quitting is monotonic false→true. pane is updated by input but not yet
	// read by any paint path.
	pane     int
	quitting bool

	fatal error
}

// NewModel acquires the first snapshot and builds the dashboard model. The
// acquisition happens here, before the TUI starts, so the very first frame
// is fully populated even if the user quits on the first key press.
func NewModel(provider metrics.Provider, log logger.Logger) (Model, error) {
	if log == nil {
		log = logger.Noop()
	}
	snap, err := provider.Acquire()
	if err != nil {
		return Model{}, err
	}
	return Model{
		provider: provider,
		log:      log,
		keys:     DefaultKeyMap(),
		snapshot: snap,
	}, nil
}

// Init issues no commands: there is no refresh timer. The dashboard draws a
// frame, then blocks until the next terminal event arrives.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles terminal events and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey applies one key event. Quit ends the loop; the navigation keys
// cycle the pane index; anything else changes no state. Every non-quit key
// triggers a fresh acquisition so the following draw reflects current
// metrics, whether or not the key was recognized.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPane):
		m.pane = (m.pane + 1) % paneCount

	case key.Matches(msg, m.keys.PrevPane):
		m.pane = (m.pane + 2) % paneCount
	}

	snap, err := m.provider.Acquire()
	if err != nil {
		m.fatal = err
		m.quitting = true
		return m, tea.Quit
	}
	m.snapshot = snap

	return m, nil
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.fatal
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.renderDashboard()
}
