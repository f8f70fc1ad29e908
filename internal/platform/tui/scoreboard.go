package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/screens"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinHeight = 3
	tableMaxHeight = screens.MaxListedScores
)

// newScoreTable creates the leaderboard table.
func newScoreTable(entries []storage.ScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Speed", Width: 8},
		{Title: "Board", Width: 7},
		{Title: "Ended", Width: 12},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Speed,
			e.Board,
			e.Reason,
		}
	}

	height := min(max(len(rows), tableMinHeight), tableMaxHeight) + 1
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// renderHighScores draws the leaderboard with a table and the screen's menu.
func renderHighScores(hs *screens.HighScoresScreen, width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(hs.Entries()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		content = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	} else {
		content = newScoreTable(hs.Entries()).View()
	}

	menu := hs.Menu()
	items := make([]string, menu.Len())
	for i := range items {
		style := colorStyles[menuColor(i == menu.Cursor())]
		label := menu.Label(i)
		if i == menu.Cursor() {
			label = "> " + label + " <"
		}
		items[i] = style.Render(label)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HIGH SCORES"),
		tableStyle.Render(content),
		"",
		strings.Join(items, "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
