// Package screens implements the menu and screen flow around a snake game:
// Title, Game, Pause, GameOver, Options and HighScores. Exactly one screen
// is active at a time and owns the input controller's callbacks.
package screens

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Screen is one state of the screen machine.
type Screen interface {
	// Name identifies the screen in logs.
	Name() string
	// Activate is called when the screen becomes current. It must bind the
	// controller.
	Activate()
	// Deactivate is called when another screen replaces this one.
	Deactivate()
	// Render draws the screen into dst, which has already been cleared.
	Render(dst *core.Screen)
}

// Options configures an App.
type Options struct {
	Config    config.SnakeConfig
	Seed      int64 // Seed for the first game; later games use Seed+n
	Scheduler core.Scheduler
	Store     *storage.Store // Optional session leaderboard
	Logger    *log.Logger    // Optional; discarded when nil
	OnRedraw  func()         // Optional redraw signal
	OnQuit    func()         // Called when the player picks QUIT
}

// App owns the controller, the current screen and the active game.
type App struct {
	cfg    config.SnakeConfig
	seed   int64
	played int64

	sched  core.Scheduler
	ctrl   *core.Controller
	store  *storage.Store
	logger *log.Logger

	current Screen
	game    *GameScreen // Game in progress, possibly paused
	notice  string      // Shown by menus after a failed action
	quit    bool

	onRedraw func()
	onQuit   func()
}

// NewApp validates the options and creates an App with no active screen.
// Call Start to show the title screen.
func NewApp(opts Options) (*App, error) {
	if opts.Scheduler == nil {
		return nil, errors.New("screens: nil scheduler")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("screens: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &App{
		cfg:      opts.Config,
		seed:     opts.Seed,
		sched:    opts.Scheduler,
		ctrl:     core.NewController(),
		store:    opts.Store,
		logger:   logger,
		onRedraw: opts.OnRedraw,
		onQuit:   opts.OnQuit,
	}, nil
}

// Start shows the title screen.
func (a *App) Start() {
	a.Show(NewTitleScreen(a))
}

// Controller returns the input controller. Platforms feed key events to it.
func (a *App) Controller() *core.Controller {
	return a.ctrl
}

// Handle forwards one raw key event to the controller.
func (a *App) Handle(ev core.KeyEvent) bool {
	return a.ctrl.Handle(ev)
}

// Current returns the active screen.
func (a *App) Current() Screen {
	return a.current
}

// Config returns the configuration used for new games.
func (a *App) Config() config.SnakeConfig {
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *log.Logger {
	return a.logger
}

// Quitting reports whether the player chose QUIT.
func (a *App) Quitting() bool {
	return a.quit
}

// SetSpeed changes the turn speed of future games.
func (a *App) SetSpeed(p config.SpeedPreset) {
	config.ApplySpeedPreset(&a.cfg, p)
	a.logger.Debug("speed changed", "speed", a.cfg.Speed, "tick", a.cfg.TickInterval())
}

// Show makes s the current screen. The old screen is deactivated first, so
// the new screen's bindings are the only ones live when Show returns.
func (a *App) Show(s Screen) {
	from := "none"
	if a.current != nil {
		from = a.current.Name()
		a.current.Deactivate()
	}
	a.ctrl.Unbind()
	a.current = s
	a.logger.Debug("screen transition", "from", from, "to", s.Name())
	s.Activate()
	a.Redraw()
}

// StartGame discards any game in progress and shows a fresh one.
func (a *App) StartGame() error {
	a.discardGame()

	gs, err := newGameScreen(a, a.seed+a.played)
	if err != nil {
		a.logger.Error("cannot start game", "error", err)
		return err
	}
	a.played++
	a.game = gs
	a.notice = ""

	a.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", a.cfg.Board.Width, a.cfg.Board.Height),
		"speed", a.cfg.Speed,
		"tick", a.cfg.TickInterval())
	a.Show(gs)
	return nil
}

// Notice returns the message left by the last failed menu action, or "".
func (a *App) Notice() string {
	return a.notice
}

// playFromMenu starts a game from a menu item. On failure the current menu
// is shown again with a notice.
func (a *App) playFromMenu() {
	if err := a.StartGame(); err != nil {
		a.notice = "Cannot start game"
		a.Show(a.current)
	}
}

// ShowTitle discards any game in progress and returns to the title screen.
func (a *App) ShowTitle() {
	a.discardGame()
	a.Show(NewTitleScreen(a))
}

// Game returns the game in progress, or nil.
func (a *App) Game() *GameScreen {
	return a.game
}

// Render clears dst and draws the current screen.
func (a *App) Render(dst *core.Screen) {
	dst.Clear()
	if a.current != nil {
		a.current.Render(dst)
	}
}

// Redraw signals the platform that the screen changed.
func (a *App) Redraw() {
	if a.onRedraw != nil {
		a.onRedraw()
	}
}

// Quit stops all timers and notifies the platform.
func (a *App) Quit() {
	a.Close()
	a.quit = true
	a.logger.Debug("quit requested")
	if a.onQuit != nil {
		a.onQuit()
	}
}

// Close cancels the active game's timers and detaches input.
func (a *App) Close() {
	a.discardGame()
	a.ctrl.Unbind()
}

// HighScore returns the best recorded score, or 0 without a store.
func (a *App) HighScore() int {
	if a.store == nil {
		return 0
	}
	high, err := a.store.HighScore()
	if err != nil {
		a.logger.Warn("cannot read high score", "error", err)
		return 0
	}
	return high
}

// TopScores returns the leaderboard, best first.
func (a *App) TopScores(limit int) []storage.ScoreEntry {
	if a.store == nil {
		return nil
	}
	scores, err := a.store.TopScores(limit)
	if err != nil {
		a.logger.Warn("cannot read scores", "error", err)
		return nil
	}
	return scores
}

// recordScore saves a finished game to the leaderboard.
func (a *App) recordScore(score int, reason snake.EndReason) {
	a.logger.Info("game ended", "score", score, "reason", reason)
	if a.store == nil {
		return
	}
	_, err := a.store.SaveScore(storage.ScoreEntry{
		Score:  score,
		Speed:  string(a.cfg.Speed),
		Board:  fmt.Sprintf("%dx%d", a.cfg.Board.Width, a.cfg.Board.Height),
		Reason: reason.String(),
	})
	if err != nil {
		a.logger.Error("cannot save score", "error", err)
	}
}

// discardGame closes the game in progress, if any.
func (a *App) discardGame() {
	if a.game == nil {
		return
	}
	a.game.game.Close()
	a.game = nil
}
