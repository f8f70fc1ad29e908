package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the game for renderers, tests and replay.
type Snapshot struct {
	Turn      uint64
	Width     int
	Height    int
	Body      []core.Vec // Tail first, head last
	Food      core.Vec
	HasFood   bool
	Score     int
	Direction core.Vec
	State     State
	Reason    EndReason
}

// Head returns the last body segment.
func (s Snapshot) Head() core.Vec {
	if len(s.Body) == 0 {
		return core.Vec{}
	}
	return s.Body[len(s.Body)-1]
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Turn:      g.turn,
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		Body:      g.snake.Body(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		Direction: g.snake.PrevDir(),
		State:     g.state,
		Reason:    g.reason,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Turn: %d, Score: %d, State: %s\n", g.turn, g.score, g.state))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", g.snake.Len(), core.DirectionName(g.snake.PrevDir())))
	b.WriteString(fmt.Sprintf("Head: %v, Food: %v\n", g.snake.Head(), g.food))
	return b.String()
}
