package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Colors used by the snake screens.
const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorBorder
	ColorHUD
	ColorTitle
	ColorMenuItem
	ColorMenuSelected
	ColorDim
)
