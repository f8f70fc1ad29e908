package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// GameScreen runs one game. Directions steer the snake; the select button
// pauses.
type GameScreen struct {
	app  *App
	game *snake.Game
	best int // Leaderboard best when the game started
}

func newGameScreen(a *App, seed int64) (*GameScreen, error) {
	s := &GameScreen{app: a, best: a.HighScore()}
	g, err := snake.New(a.cfg.GameConfig(seed), a.sched, snake.Hooks{
		Redraw:   a.Redraw,
		Ended:    s.ended,
		GameOver: s.gameOver,
	})
	if err != nil {
		return nil, fmt.Errorf("screens: %w", err)
	}
	s.game = g
	return s, nil
}

// Name returns "game".
func (s *GameScreen) Name() string { return "game" }

// Game returns the underlying engine.
func (s *GameScreen) Game() *snake.Game { return s.game }

// Activate binds input and starts or resumes the turn timer. An ended game
// gets no input.
func (s *GameScreen) Activate() {
	if s.game.State() == snake.StateEnded {
		return
	}
	s.app.ctrl.Bind(s.steer, s.pause)
	s.game.Resume()
}

// Deactivate leaves the game as is; pausing happens before the switch.
func (s *GameScreen) Deactivate() {}

// Render draws the board and HUD.
func (s *GameScreen) Render(dst *core.Screen) {
	drawBoard(dst, s.game.Snapshot(), s.best)
}

func (s *GameScreen) steer(a core.AxisState) {
	s.game.SteerAxes(a)
}

func (s *GameScreen) pause(t core.Transition) {
	if t != core.Pressed || s.game.State() != snake.StateRunning {
		return
	}
	s.game.Pause()
	s.app.Show(newPauseScreen(s.app, s))
}

// ended detaches input for the game-over delay and records the score.
func (s *GameScreen) ended(reason snake.EndReason, score int) {
	s.app.ctrl.Unbind()
	s.app.logger.Debug("final board", "state", s.game.DebugState())
	s.app.recordScore(score, reason)
}

func (s *GameScreen) gameOver(score int) {
	reason := s.game.Reason()
	s.app.discardGame()
	s.app.Show(newGameOverScreen(s.app, score, reason))
}
