package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board drawing. Each tile is two cells wide so tiles look square in a
// terminal.
const (
	tileWidth = 2

	runeHead = '█'
	runeBody = '▓'
	runeFood = '●'
)

// boardOrigin returns the top-left corner of the board box, centered in dst
// with one row reserved above it for the HUD.
func boardOrigin(dst *core.Screen, w, h int) (int, int) {
	boxW := w*tileWidth + 2
	boxH := h + 2
	ox := max((dst.Width()-boxW)/2, 0)
	oy := max((dst.Height()-boxH-1)/2, 0) + 1
	return ox, oy
}

// drawBoard draws the border, food and snake of a snapshot, plus the score
// line above the board.
func drawBoard(dst *core.Screen, snap snake.Snapshot, best int) {
	ox, oy := boardOrigin(dst, snap.Width, snap.Height)
	boxW := snap.Width*tileWidth + 2

	dst.DrawBox(ox, oy, boxW, snap.Height+2, core.ColorBorder)

	tile := func(p core.Vec, r rune, c core.Color) {
		x := ox + 1 + p.X*tileWidth
		y := oy + 1 + p.Y
		for i := 0; i < tileWidth; i++ {
			dst.SetColor(x+i, y, r, c)
		}
	}

	if snap.HasFood {
		tile(snap.Food, ' ', core.ColorFood)
		dst.SetColor(ox+1+snap.Food.X*tileWidth, oy+1+snap.Food.Y, runeFood, core.ColorFood)
	}
	for i, seg := range snap.Body {
		if i == len(snap.Body)-1 {
			tile(seg, runeHead, core.ColorSnakeHead)
		} else {
			tile(seg, runeBody, core.ColorSnakeBody)
		}
	}

	// HUD
	dst.DrawText(ox, oy-1, fmt.Sprintf("Score: %d", snap.Score), core.ColorHUD)
	if best > 0 {
		text := fmt.Sprintf("Best: %d", max(best, snap.Score))
		dst.DrawText(ox+boxW-len(text), oy-1, text, core.ColorDim)
	}

	if snap.State == snake.StateEnded {
		msg := " GAME OVER "
		if snap.Reason == snake.EndBoardFull {
			msg = " BOARD FULL "
		}
		dst.DrawText(ox+(boxW-len(msg))/2, oy+1+snap.Height/2, msg, core.ColorTitle)
	}
}

// drawNotice writes msg centered on the bottom row.
func drawNotice(dst *core.Screen, msg string) {
	if msg != "" {
		dst.DrawTextCentered(dst.Height()-1, msg, core.ColorTitle)
	}
}

// menuTop returns the first row for a block of n lines centered vertically.
func menuTop(dst *core.Screen, n int) int {
	return max((dst.Height()-n)/2, 0)
}
