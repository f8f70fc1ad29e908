// Package snake implements the turn-based snake engine: the snake body as a
// movement queue, food placement, and the Running/Paused/Ended turn loop.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the ordered list of occupied tiles, tail at index 0 and head last.
type Snake struct {
	body    []core.Vec
	prevDir core.Vec // Direction applied on the last turn
	nextDir core.Vec // Buffered direction for the next turn
}

// NewSnake spawns a two-segment snake with its head at the board center and
// its tail one step behind, facing dir.
func NewSnake(board core.Board, dir core.Vec) *Snake {
	head := board.Center()
	tail := board.Wrap(head.Add(dir.Neg()))
	return &Snake{
		body:    []core.Vec{tail, head},
		prevDir: dir,
		nextDir: dir,
	}
}

// newSnakeFromBody builds a snake from explicit segments (tail first).
func newSnakeFromBody(body []core.Vec, dir core.Vec) *Snake {
	b := make([]core.Vec, len(body))
	copy(b, body)
	return &Snake{body: b, prevDir: dir, nextDir: dir}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the most recently pushed segment.
func (s *Snake) Head() core.Vec {
	return s.body[len(s.body)-1]
}

// Tail returns the oldest segment.
func (s *Snake) Tail() core.Vec {
	return s.body[0]
}

// Body returns a copy of the segments, tail first.
func (s *Snake) Body() []core.Vec {
	out := make([]core.Vec, len(s.body))
	copy(out, s.body)
	return out
}

// PrevDir returns the direction applied on the last turn.
func (s *Snake) PrevDir() core.Vec {
	return s.prevDir
}

// NextDir returns the buffered direction for the next turn.
func (s *Snake) NextDir() core.Vec {
	return s.nextDir
}

// SetNextDir buffers dir for the next turn. Non-cardinal vectors and the exact
// reverse of the last applied direction are discarded. The reversal check is
// against prevDir, so several taps between turns cannot fold the snake back on
// itself. Returns whether dir was accepted; the last accepted value wins.
func (s *Snake) SetNextDir(dir core.Vec) bool {
	if !dir.IsCardinal() || dir == s.prevDir.Neg() {
		return false
	}
	s.nextDir = dir
	return true
}

// Advance applies the buffered direction and pushes the new wrapped head.
// The tail is left in place; callers drop it with RemoveTail when no food
// was eaten.
func (s *Snake) Advance(board core.Board) core.Vec {
	s.prevDir = s.nextDir
	head := board.Wrap(s.Head().Add(s.prevDir))
	s.body = append(s.body, head)
	return head
}

// RemoveTail drops the oldest segment.
func (s *Snake) RemoveTail() {
	if len(s.body) == 0 {
		return
	}
	s.body = s.body[1:]
}

// HasSelfCollision returns true if the head shares a tile with any other
// segment.
func (s *Snake) HasSelfCollision() bool {
	headIdx := len(s.body) - 1
	if headIdx < 1 {
		return false
	}
	head := s.body[headIdx]
	for i := range headIdx {
		if s.body[i] == head {
			return true
		}
	}
	return false
}

// Occupies returns true if any segment is on p.
func (s *Snake) Occupies(p core.Vec) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
