// Package tui provides the terminal user interface for the task list.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist-tui/internal/config"
	"github.com/hy4ri/tasklist-tui/internal/tui/logic"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
	"github.com/hy4ri/tasklist-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
// Bubble Tea's loop is the event loop: one message in, one Update, one
// full View repaint.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance with an empty task list.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	s := state.New(cfg)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s, logger),
		renderer: ui.NewRenderer(s),
	}
}

// State exposes the application state, mainly for tests.
func (a *App) State() *state.State {
	return a.state
}

// Handler exposes the controller, mainly for tests.
func (a *App) Handler() *logic.Handler {
	return a.handler
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// Options configures the terminal session.
type Options struct {
	Input  io.Reader
	Output io.Writer
}

// Run acquires the terminal (raw mode, alternate screen, mouse capture),
// runs the app until it reaches the Exit screen and releases the terminal.
// Bubble Tea restores the terminal on every exit path, panics included.
func Run(ctx context.Context, app *App, opts Options) error {
	teaOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if opts.Input != nil {
		teaOpts = append(teaOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(app, teaOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
