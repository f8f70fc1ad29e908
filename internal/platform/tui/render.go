package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorSnakeHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorSnakeBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBorder:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHUD:          lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorTitle:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorMenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorMenuSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// menuColor picks the color for a menu item.
func menuColor(selected bool) core.Color {
	if selected {
		return core.ColorMenuSelected
	}
	return core.ColorMenuItem
}
