package core

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned when a board would have no tiles.
var ErrInvalidBoard = errors.New("core: invalid board size")

// Board is a fixed rectangular grid with toroidal topology: leaving one edge
// re-enters from the opposite edge. Tile size and screen origin are rendering
// concerns and are not stored here.
type Board struct {
	width  int
	height int
}

// NewBoard creates a board with the given dimensions.
// Both dimensions must be positive, otherwise Wrap would divide by zero.
func NewBoard(width, height int) (Board, error) {
	if width < 1 || height < 1 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, width, height)
	}
	return Board{width: width, height: height}, nil
}

// MustBoard is like NewBoard but panics on invalid dimensions.
// Intended for tests and constants.
func MustBoard(width, height int) Board {
	b, err := NewBoard(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// Area returns the total number of tiles.
func (b Board) Area() int {
	return b.width * b.height
}

// Wrap maps any integer coordinate onto the board, so that
// 0 <= x < Width and 0 <= y < Height. Wrap is idempotent.
func (b Board) Wrap(v Vec) Vec {
	return Vec{X: Mod(v.X, b.width), Y: Mod(v.Y, b.height)}
}

// Contains returns true if v already lies on the board.
func (b Board) Contains(v Vec) bool {
	return v.X >= 0 && v.X < b.width && v.Y >= 0 && v.Y < b.height
}

// Center returns the tile used for spawning: (round(W/2), round(H/2)).
func (b Board) Center() Vec {
	return Vec{X: (b.width + 1) / 2, Y: (b.height + 1) / 2}
}

// Index converts a coordinate to its row-major tile index.
func (b Board) Index(v Vec) int {
	return v.Y*b.width + v.X
}

// At converts a row-major tile index back to a coordinate.
func (b Board) At(index int) Vec {
	return Vec{X: index % b.width, Y: index / b.width}
}
