package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MaxListedScores is the number of leaderboard rows shown.
const MaxListedScores = 10

// HighScoresScreen lists the session leaderboard.
type HighScoresScreen struct {
	app     *App
	entries []storage.ScoreEntry
	menu    *Menu
}

// NewHighScoresScreen loads the leaderboard and creates the screen.
func NewHighScoresScreen(a *App) *HighScoresScreen {
	s := &HighScoresScreen{app: a}
	s.menu = NewMenu(MenuItem{Label: "BACK", Action: a.ShowTitle})
	return s
}

// Name returns "highscores".
func (s *HighScoresScreen) Name() string { return "highscores" }

// Entries returns the rows shown, best first.
func (s *HighScoresScreen) Entries() []storage.ScoreEntry { return s.entries }

// Menu returns the screen's menu.
func (s *HighScoresScreen) Menu() *Menu { return s.menu }

// Activate reloads the leaderboard and binds the menu.
func (s *HighScoresScreen) Activate() {
	s.entries = s.app.TopScores(MaxListedScores)
	s.menu.Reset()
	s.menu.Bind(s.app.ctrl, s.app.Redraw)
}

// Deactivate is a no-op.
func (s *HighScoresScreen) Deactivate() {}

// Render draws the leaderboard rows and the menu.
func (s *HighScoresScreen) Render(dst *core.Screen) {
	rows := max(len(s.entries), 1)
	y := menuTop(dst, rows+5)
	dst.DrawTextCentered(y, "HIGH SCORES", core.ColorTitle)
	y += 2

	if len(s.entries) == 0 {
		dst.DrawTextCentered(y, "No scores yet", core.ColorDim)
		y++
	}
	for i, e := range s.entries {
		line := fmt.Sprintf("#%-2d %5d  %-6s %s", i+1, e.Score, e.Speed, e.Board)
		dst.DrawTextCentered(y, line, core.ColorHUD)
		y++
	}

	s.menu.Render(dst, y+1)
}
