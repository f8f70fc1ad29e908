package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Default timing, matching the classic browser version.
const (
	DefaultWidth        = 20
	DefaultHeight       = 19
	DefaultTickInterval = 350 * time.Millisecond
	DefaultEndDelay     = 1500 * time.Millisecond
	MinBoardSize        = 3
	MaxBoardSize        = 1000
)

// State is the engine's run state.
type State int

const (
	StateReady State = iota // Created, not yet started
	StateRunning
	StatePaused
	StateEnded
)

// String returns a lowercase state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason explains why a game ended.
type EndReason int

const (
	EndNone      EndReason = iota
	EndCollision           // Head ran into the body
	EndBoardFull           // No tile left for food
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Config holds the parameters of one game.
type Config struct {
	Width          int
	Height         int
	TickInterval   time.Duration
	EndDelay       time.Duration
	StartDirection core.Vec
	Seed           int64
}

// DefaultConfig returns the classic 20x19 board at 350ms per turn.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		TickInterval:   DefaultTickInterval,
		EndDelay:       DefaultEndDelay,
		StartDirection: core.Up,
	}
}

// Hooks are the engine's outgoing signals. All are optional.
type Hooks struct {
	// Redraw is called after every turn and state change.
	Redraw func()
	// Ended is called as soon as the game ends. Input should be detached.
	Ended func(reason EndReason, score int)
	// GameOver is called once, EndDelay after Ended.
	GameOver func(score int)
}

// Game is one round of snake. It owns its board, snake, food and score, and
// at most one recurring turn timer.
type Game struct {
	cfg   Config
	board core.Board
	rng   *rand.Rand
	sched core.Scheduler
	hooks Hooks

	snake   *Snake
	food    core.Vec
	hasFood bool
	score   int
	turn    uint64

	state  State
	reason EndReason
	ticker core.Timer // Recurring turn timer while running
	delay  core.Timer // Game-over display delay after ending
}

// New creates a game in StateReady. Call Resume to start the turn timer.
func New(cfg Config, sched core.Scheduler, hooks Hooks) (*Game, error) {
	if cfg.Width < MinBoardSize || cfg.Height < MinBoardSize {
		return nil, fmt.Errorf("snake: board %dx%d is smaller than %dx%d: %w",
			cfg.Width, cfg.Height, MinBoardSize, MinBoardSize, core.ErrInvalidBoard)
	}
	if cfg.Width > MaxBoardSize || cfg.Height > MaxBoardSize {
		return nil, fmt.Errorf("snake: board %dx%d is larger than %dx%d: %w",
			cfg.Width, cfg.Height, MaxBoardSize, MaxBoardSize, core.ErrInvalidBoard)
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("snake: tick interval must be positive, got %v", cfg.TickInterval)
	}
	if !cfg.StartDirection.IsCardinal() {
		return nil, fmt.Errorf("snake: start direction %v is not cardinal", cfg.StartDirection)
	}
	if sched == nil {
		return nil, errors.New("snake: nil scheduler")
	}

	board, err := core.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		board: board,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		sched: sched,
		hooks: hooks,
		state: StateReady,
	}
	g.snake = NewSnake(board, cfg.StartDirection)

	food, err := SpawnFood(board, g.snake, g.rng)
	if err != nil {
		return nil, fmt.Errorf("snake: initial food: %w", err)
	}
	g.food = food
	g.hasFood = true

	return g, nil
}

// Board returns the game board.
func (g *Game) Board() core.Board {
	return g.board
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// State returns the current run state.
func (g *Game) State() State {
	return g.state
}

// Reason returns why the game ended, or EndNone.
func (g *Game) Reason() EndReason {
	return g.reason
}

// TickInterval returns the time between turns.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.TickInterval
}

// Steer buffers a direction for the next turn.
// Ignored unless the game is running; invalid directions are dropped silently.
func (g *Game) Steer(dir core.Vec) bool {
	if g.state != StateRunning {
		return false
	}
	return g.snake.SetNextDir(dir)
}

// SteerAxes converts a D-pad state to a direction and buffers it.
func (g *Game) SteerAxes(a core.AxisState) bool {
	return g.Steer(a.Direction())
}

// Resume starts or restarts the turn timer. The previous timer, if any, is
// stopped first so a game never has two.
func (g *Game) Resume() {
	if g.state != StateReady && g.state != StatePaused {
		return
	}
	core.StopTimer(g.ticker)
	g.state = StateRunning
	g.ticker = g.sched.Every(g.cfg.TickInterval, g.Turn)
	g.redraw()
}

// Pause suspends the turn timer, keeping all game state.
func (g *Game) Pause() {
	if g.state != StateRunning {
		return
	}
	core.StopTimer(g.ticker)
	g.ticker = nil
	g.state = StatePaused
	g.redraw()
}

// Close cancels every timer owned by the game. Call it whenever the game is
// discarded. A closed game never fires hooks again.
func (g *Game) Close() {
	core.StopTimer(g.ticker)
	core.StopTimer(g.delay)
	g.ticker = nil
	g.delay = nil
	g.state = StateEnded
	g.hooks = Hooks{}
}

// Turn advances the game by one step. It is a no-op unless running.
func (g *Game) Turn() {
	if g.state != StateRunning {
		return
	}
	g.turn++

	head := g.snake.Advance(g.board)

	if g.hasFood && head == g.food {
		g.score++
		food, err := SpawnFood(g.board, g.snake, g.rng)
		if err != nil {
			// The snake fills the board; the grown snake and score stand.
			g.hasFood = false
			g.end(EndBoardFull)
			return
		}
		g.food = food
	} else {
		g.snake.RemoveTail()
	}

	if g.snake.HasSelfCollision() {
		g.end(EndCollision)
		return
	}

	g.redraw()
}

// end stops the turn timer and schedules the game-over hand-off.
func (g *Game) end(reason EndReason) {
	core.StopTimer(g.ticker)
	g.ticker = nil
	g.state = StateEnded
	g.reason = reason

	if g.hooks.Ended != nil {
		g.hooks.Ended(reason, g.score)
	}

	score := g.score
	g.delay = g.sched.After(g.cfg.EndDelay, func() {
		g.delay = nil
		if g.hooks.GameOver != nil {
			g.hooks.GameOver(score)
		}
	})

	g.redraw()
}

// redraw signals the renderer.
func (g *Game) redraw() {
	if g.hooks.Redraw != nil {
		g.hooks.Redraw()
	}
}
