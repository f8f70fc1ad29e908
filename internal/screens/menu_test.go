package screens

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestMenuNavWrapsUp(t *testing.T) {
	m := NewMenu(MenuItem{Label: "A"}, MenuItem{Label: "B"}, MenuItem{Label: "C"})

	m.Nav(1) // up
	if m.Cursor() != 2 {
		t.Errorf("Cursor() after up = %d, expected 2", m.Cursor())
	}
	m.Nav(1)
	if m.Cursor() != 1 {
		t.Errorf("Cursor() after second up = %d, expected 1", m.Cursor())
	}
	m.Nav(-1) // down
	m.Nav(-1)
	if m.Cursor() != 0 {
		t.Errorf("Cursor() after two downs = %d, expected 0", m.Cursor())
	}
}

func TestMenuNavThroughController(t *testing.T) {
	c := core.NewController()
	m := NewMenu(MenuItem{Label: "A"}, MenuItem{Label: "B"}, MenuItem{Label: "C"})
	redraws := 0
	m.Bind(c, func() { redraws++ })

	c.Tap(core.ButtonUp)
	if m.Cursor() != 2 {
		t.Errorf("Cursor() = %d, expected 2", m.Cursor())
	}
	c.Tap(core.ButtonUp)
	if m.Cursor() != 1 {
		t.Errorf("Cursor() = %d, expected 1", m.Cursor())
	}
	if redraws != 2 {
		t.Errorf("Expected 2 redraws, got %d", redraws)
	}

	// Horizontal input does not move the cursor.
	c.Tap(core.ButtonLeft)
	c.Tap(core.ButtonRight)
	if m.Cursor() != 1 {
		t.Errorf("Cursor() after horizontal input = %d, expected 1", m.Cursor())
	}
}

func TestMenuHeldKeyMovesOnce(t *testing.T) {
	c := core.NewController()
	m := NewMenu(MenuItem{Label: "A"}, MenuItem{Label: "B"}, MenuItem{Label: "C"})
	m.Bind(c, nil)

	c.Press(core.ButtonDown)
	c.Handle(core.KeyEvent{Button: core.ButtonDown, Transition: core.Pressed, Repeat: true})
	c.Press(core.ButtonLeft) // axes change, vertical unchanged
	if m.Cursor() != 1 {
		t.Errorf("Cursor() = %d, expected 1", m.Cursor())
	}
}

func TestMenuSelectOnPressOnly(t *testing.T) {
	c := core.NewController()
	picked := ""
	m := NewMenu(
		MenuItem{Label: "A", Action: func() { picked = "A" }},
		MenuItem{Label: "B", Action: func() { picked = "B" }},
	)
	m.Bind(c, nil)

	c.Tap(core.ButtonDown)
	c.Press(core.ButtonSelect)
	if picked != "B" {
		t.Errorf("Picked %q, expected B", picked)
	}

	picked = ""
	c.Release(core.ButtonSelect)
	if picked != "" {
		t.Error("Release should not trigger the action")
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu()
	if m.Nav(1) {
		t.Error("Nav on an empty menu should do nothing")
	}
	if m.HandleSelect(core.Pressed) {
		t.Error("Select on an empty menu should do nothing")
	}
}

func TestMenuRender(t *testing.T) {
	m := NewMenu(MenuItem{Label: "START"}, MenuItem{Label: "QUIT"})
	dst := core.NewScreen(30, 5)

	next := m.Render(dst, 1)
	if next != 3 {
		t.Errorf("Render() = %d, expected 3", next)
	}
	if got := dst.Row(1); !contains(got, "> START <") {
		t.Errorf("Row 1 = %q, expected highlighted START", got)
	}
	if got := dst.Row(2); !contains(got, "QUIT") || contains(got, ">") {
		t.Errorf("Row 2 = %q, expected plain QUIT", got)
	}
}
