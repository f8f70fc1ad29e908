package screens

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuItem is one selectable line.
type MenuItem struct {
	Label  string
	Action func()
}

// Menu is an ordered item list with a wrapping cursor.
// Up input moves the cursor to the previous item.
type Menu struct {
	items    []MenuItem
	cursor   int
	vertical int // Last seen vertical axis
}

// NewMenu creates a menu with the cursor on the first item.
func NewMenu(items ...MenuItem) *Menu {
	return &Menu{items: items}
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Cursor returns the highlighted index.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Label returns the label of item i.
func (m *Menu) Label(i int) string {
	if i < 0 || i >= len(m.items) {
		return ""
	}
	return m.items[i].Label
}

// SetLabel replaces the label of item i.
func (m *Menu) SetLabel(i int, label string) {
	if i >= 0 && i < len(m.items) {
		m.items[i].Label = label
	}
}

// Reset moves the cursor back to the first item.
func (m *Menu) Reset() {
	m.cursor = 0
	m.vertical = 0
}

// Nav moves the cursor by -vertical, wrapping around.
func (m *Menu) Nav(vertical int) bool {
	if len(m.items) == 0 || vertical == 0 {
		return false
	}
	m.cursor = core.Mod(m.cursor-vertical, len(m.items))
	return true
}

// HandleAxes navigates when the vertical axis changes to a non-zero value.
// Horizontal changes do not move the cursor.
func (m *Menu) HandleAxes(a core.AxisState) bool {
	if a.Vertical == m.vertical {
		return false
	}
	m.vertical = a.Vertical
	return m.Nav(a.Vertical)
}

// HandleSelect runs the highlighted item's action on a press.
func (m *Menu) HandleSelect(t core.Transition) bool {
	if t != core.Pressed || len(m.items) == 0 {
		return false
	}
	if action := m.items[m.cursor].Action; action != nil {
		action()
	}
	return true
}

// Bind attaches the menu to the controller. redraw is called after every
// cursor move.
func (m *Menu) Bind(c *core.Controller, redraw func()) {
	m.vertical = c.Axes().Vertical
	c.Bind(
		func(a core.AxisState) {
			if m.HandleAxes(a) && redraw != nil {
				redraw()
			}
		},
		func(t core.Transition) {
			m.HandleSelect(t)
		},
	)
}

// Render draws the items centered, one per line, starting at row y.
// Returns the row after the last item.
func (m *Menu) Render(dst *core.Screen, y int) int {
	for i, item := range m.items {
		if i == m.cursor {
			dst.DrawTextCentered(y, "> "+item.Label+" <", core.ColorMenuSelected)
		} else {
			dst.DrawTextCentered(y, item.Label, core.ColorMenuItem)
		}
		y++
	}
	return y
}
