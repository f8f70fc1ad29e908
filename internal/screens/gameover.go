package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// GameOverScreen shows the final score: PLAY AGAIN or MAIN MENU.
type GameOverScreen struct {
	app    *App
	score  int
	reason snake.EndReason
	menu   *Menu
}

func newGameOverScreen(a *App, score int, reason snake.EndReason) *GameOverScreen {
	s := &GameOverScreen{app: a, score: score, reason: reason}
	s.menu = NewMenu(
		MenuItem{Label: "PLAY AGAIN", Action: a.playFromMenu},
		MenuItem{Label: "MAIN MENU", Action: a.ShowTitle},
	)
	return s
}

// Name returns "gameover".
func (s *GameOverScreen) Name() string { return "gameover" }

// Score returns the final score.
func (s *GameOverScreen) Score() int { return s.score }

// Menu returns the screen's menu.
func (s *GameOverScreen) Menu() *Menu { return s.menu }

// Activate resets the cursor and binds the menu.
func (s *GameOverScreen) Activate() {
	s.menu.Reset()
	s.menu.Bind(s.app.ctrl, s.app.Redraw)
}

// Deactivate is a no-op.
func (s *GameOverScreen) Deactivate() {}

// Render draws the final score and the menu.
func (s *GameOverScreen) Render(dst *core.Screen) {
	y := menuTop(dst, s.menu.Len()+6)
	dst.DrawTextCentered(y, "GAME OVER", core.ColorTitle)
	if s.reason == snake.EndBoardFull {
		dst.DrawTextCentered(y+1, "The board is full!", core.ColorHUD)
	}
	dst.DrawTextCentered(y+2, fmt.Sprintf("Score: %d", s.score), core.ColorHUD)
	if best := s.app.HighScore(); best > 0 {
		dst.DrawTextCentered(y+3, fmt.Sprintf("Best: %d", best), core.ColorDim)
	}
	s.menu.Render(dst, y+5)
	drawNotice(dst, s.app.Notice())
}
