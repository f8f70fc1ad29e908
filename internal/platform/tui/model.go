package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/screens"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

// Options configures the terminal program.
type Options struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
}

// Model is the Bubble Tea model for the snake app.
type Model struct {
	app      *screens.App
	sched    *Scheduler
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and shows the title screen.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := NewScheduler()
	app, err := screens.NewApp(screens.Options{
		Config:    opts.Config,
		Seed:      cfg.Seed,
		Scheduler: sched,
		Store:     opts.Store,
		Logger:    logger,
	})
	if err != nil {
		return Model{}, err
	}
	app.Start()

	return Model{
		app:    app,
		sched:  sched,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}, nil
}

// App returns the screen machine driven by the model.
func (m Model) App() *screens.App {
	return m.app
}

// Init returns any timers queued while building the model.
func (m Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TimerMsg:
		m.sched.Fire(msg)
		return m, m.sched.Drain()
	}

	return m, nil
}

// handleKey feeds a key to the controller. Terminals report no key releases,
// so every key is delivered as a press followed by a release.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		return m.quit()
	}

	button := m.keys.Button(msg)
	if button == core.ButtonNone {
		m.logger.Debug("unmapped key", "key", msg.String())
		return m, nil
	}

	ctrl := m.app.Controller()
	ctrl.Press(button)
	ctrl.Release(button)

	if m.app.Quitting() {
		return m.quit()
	}
	return m, m.sched.Drain()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.app.Close()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current screen and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if hs, ok := m.app.Current().(*screens.HighScoresScreen); ok {
		body = renderHighScores(hs, m.screen.Width(), m.screen.Height())
	} else {
		m.app.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	model.app.Close()
	return err
}
