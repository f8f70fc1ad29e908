package screens

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// OptionsScreen lets the player cycle the speed preset.
type OptionsScreen struct {
	app  *App
	menu *Menu
}

// NewOptionsScreen creates the options menu: SPEED and BACK.
func NewOptionsScreen(a *App) *OptionsScreen {
	s := &OptionsScreen{app: a}
	s.menu = NewMenu(
		MenuItem{Label: speedLabel(a.cfg), Action: s.cycleSpeed},
		MenuItem{Label: "BACK", Action: a.ShowTitle},
	)
	return s
}

// Name returns "options".
func (s *OptionsScreen) Name() string { return "options" }

// Menu returns the screen's menu.
func (s *OptionsScreen) Menu() *Menu { return s.menu }

// Activate resets the cursor and binds the menu.
func (s *OptionsScreen) Activate() {
	s.menu.Reset()
	s.menu.Bind(s.app.ctrl, s.app.Redraw)
}

// Deactivate is a no-op.
func (s *OptionsScreen) Deactivate() {}

// Render draws the options menu.
func (s *OptionsScreen) Render(dst *core.Screen) {
	y := menuTop(dst, s.menu.Len()+2)
	dst.DrawTextCentered(y, "OPTIONS", core.ColorTitle)
	s.menu.Render(dst, y+2)
}

func (s *OptionsScreen) cycleSpeed() {
	s.app.SetSpeed(s.app.cfg.Speed.Next())
	s.menu.SetLabel(0, speedLabel(s.app.cfg))
	s.app.Redraw()
}

func speedLabel(cfg config.SnakeConfig) string {
	name := string(cfg.Speed)
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("SPEED: %s (%dms)", strings.ToUpper(name), cfg.Timing.TickMS)
}
