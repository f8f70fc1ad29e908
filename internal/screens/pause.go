package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// PauseScreen holds a paused game: CONTINUE or MAIN MENU.
type PauseScreen struct {
	app  *App
	game *GameScreen
	menu *Menu
}

func newPauseScreen(a *App, gs *GameScreen) *PauseScreen {
	s := &PauseScreen{app: a, game: gs}
	s.menu = NewMenu(
		MenuItem{Label: "CONTINUE", Action: func() { a.Show(gs) }},
		MenuItem{Label: "MAIN MENU", Action: a.ShowTitle},
	)
	return s
}

// Name returns "pause".
func (s *PauseScreen) Name() string { return "pause" }

// Menu returns the screen's menu.
func (s *PauseScreen) Menu() *Menu { return s.menu }

// Activate resets the cursor and binds the menu.
func (s *PauseScreen) Activate() {
	s.menu.Reset()
	s.menu.Bind(s.app.ctrl, s.app.Redraw)
}

// Deactivate is a no-op; the game stays paused until CONTINUE.
func (s *PauseScreen) Deactivate() {}

// Render draws the paused score and the menu.
func (s *PauseScreen) Render(dst *core.Screen) {
	y := menuTop(dst, s.menu.Len()+4)
	dst.DrawTextCentered(y, "PAUSED", core.ColorTitle)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Score: %d", s.game.game.Score()), core.ColorHUD)
	s.menu.Render(dst, y+3)
}
