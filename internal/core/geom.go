// Package core provides the fundamental types of the snake engine: grid
// coordinates, the wrapping board, the input controller and timer scheduling.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec is an integer 2D coordinate or displacement on the board grid.
// It is a value type: equality is structural, so two Vecs with the same
// components are interchangeable.
type Vec struct {
	X, Y int
}

// Cardinal unit vectors. Screen coordinates grow downward, so Up is -Y.
var (
	Zero  = Vec{}
	Up    = Vec{X: 0, Y: -1}
	Down  = Vec{X: 0, Y: 1}
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
)

// V is shorthand for constructing a Vec.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by factor.
func (v Vec) Scale(factor int) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Neg returns the opposite vector.
func (v Vec) Neg() Vec {
	return v.Scale(-1)
}

// Equals reports structural equality. Equivalent to ==.
func (v Vec) Equals(o Vec) bool {
	return v == o
}


// IsCardinal returns true if v is one of Up, Down, Left or Right.
func (v Vec) IsCardinal() bool {
	return Abs(v.X)+Abs(v.Y) == 1
}

// Magnitude returns the Euclidean length of the vector.
// Only renderers need this; gameplay works on integer steps.
func (v Vec) Magnitude() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Normalize returns the unit-length float components of v.
// The zero vector normalizes to (0, 0).
func (v Vec) Normalize() (float64, float64) {
	m := v.Magnitude()
	if m == 0 {
		return 0, 0
	}
	return float64(v.X) / m, float64(v.Y) / m
}

// String returns "(x,y)".
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// DirectionName returns a label for cardinal vectors ("up", "down", "left",
// "right") and "none" for anything else.
func DirectionName(v Vec) string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts a direction label to its unit vector.
func ParseDirection(name string) (Vec, bool) {
	switch name {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return Zero, false
	}
}

// Mod returns the mathematical modulo of a by n, always in [0, n).
// Go's % keeps the sign of the dividend, so negative inputs need the
// second pass. n must be positive.
func Mod(a, n int) int {
	return ((a % n) + n) % n
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
