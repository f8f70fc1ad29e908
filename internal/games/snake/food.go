package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoTilesLeft is returned when the snake covers the whole board and there
// is nowhere to put food. The engine treats it as a normal end of game.
var ErrNoTilesLeft = errors.New("snake: no free tiles left for food")

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SpawnFood picks a tile uniformly from every board tile the snake does not
// occupy. Candidates are enumerated in row-major order, so a seeded source
// gives reproducible placement.
func SpawnFood(board core.Board, s *Snake, rng Rand) (core.Vec, error) {
	occupied := make([]bool, board.Area())
	for _, seg := range s.body {
		occupied[board.Index(seg)] = true
	}

	whitelist := make([]core.Vec, 0, max(board.Area()-s.Len(), 0))
	for i, taken := range occupied {
		if !taken {
			whitelist = append(whitelist, board.At(i))
		}
	}

	if len(whitelist) == 0 {
		return core.Vec{}, ErrNoTilesLeft
	}
	return whitelist[rng.Intn(len(whitelist))], nil
}
