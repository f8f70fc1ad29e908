package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TitleScreen is the main menu.
type TitleScreen struct {
	app  *App
	menu *Menu
}

// NewTitleScreen creates the main menu: START, HIGH SCORES, OPTIONS, QUIT.
func NewTitleScreen(a *App) *TitleScreen {
	s := &TitleScreen{app: a}
	s.menu = NewMenu(
		MenuItem{Label: "START", Action: a.playFromMenu},
		MenuItem{Label: "HIGH SCORES", Action: func() { a.Show(NewHighScoresScreen(a)) }},
		MenuItem{Label: "OPTIONS", Action: func() { a.Show(NewOptionsScreen(a)) }},
		MenuItem{Label: "QUIT", Action: a.Quit},
	)
	return s
}

// Name returns "title".
func (s *TitleScreen) Name() string { return "title" }

// Menu returns the screen's menu.
func (s *TitleScreen) Menu() *Menu { return s.menu }

// Activate resets the cursor and binds the menu.
func (s *TitleScreen) Activate() {
	s.menu.Reset()
	s.menu.Bind(s.app.ctrl, s.app.Redraw)
}

// Deactivate is a no-op.
func (s *TitleScreen) Deactivate() {}

// Render draws the title, best score and menu.
func (s *TitleScreen) Render(dst *core.Screen) {
	y := menuTop(dst, s.menu.Len()+6)
	dst.DrawTextCentered(y, "S N A K E", core.ColorTitle)
	y += 2
	if best := s.app.HighScore(); best > 0 {
		dst.DrawTextCentered(y, fmt.Sprintf("Best: %d", best), core.ColorDim)
	}
	y += 2
	s.menu.Render(dst, y)
	drawNotice(dst, s.app.Notice())
}
