package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hookLog records engine signals.
type hookLog struct {
	redraws  int
	ended    []EndReason
	endScore int
	gameOver []int
}

func (h *hookLog) hooks() Hooks {
	return Hooks{
		Redraw: func() { h.redraws++ },
		Ended: func(r EndReason, score int) {
			h.ended = append(h.ended, r)
			h.endScore = score
		},
		GameOver: func(score int) { h.gameOver = append(h.gameOver, score) },
	}
}

// newTestGame creates a running-ready game on a w*h board.
func newTestGame(t *testing.T, w, h int) (*Game, *core.ManualScheduler, *hookLog) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 42

	sched := core.NewManualScheduler()
	log := &hookLog{}
	g, err := New(cfg, sched, log.hooks())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, sched, log
}

func TestNewValidatesConfig(t *testing.T) {
	sched := core.NewManualScheduler()

	small := DefaultConfig()
	small.Width = 2
	if _, err := New(small, sched, Hooks{}); !errors.Is(err, core.ErrInvalidBoard) {
		t.Errorf("New() with 2-wide board error = %v, expected ErrInvalidBoard", err)
	}

	huge := DefaultConfig()
	huge.Width, huge.Height = 1<<31, 1<<31
	if _, err := New(huge, sched, Hooks{}); !errors.Is(err, core.ErrInvalidBoard) {
		t.Errorf("New() with %dx%d board error = %v, expected ErrInvalidBoard", huge.Width, huge.Height, err)
	}

	tall := DefaultConfig()
	tall.Height = MaxBoardSize + 1
	if _, err := New(tall, sched, Hooks{}); !errors.Is(err, core.ErrInvalidBoard) {
		t.Errorf("New() with %d-high board error = %v, expected ErrInvalidBoard", tall.Height, err)
	}

	noTick := DefaultConfig()
	noTick.TickInterval = 0
	if _, err := New(noTick, sched, Hooks{}); err == nil {
		t.Error("New() should reject a zero tick interval")
	}

	diag := DefaultConfig()
	diag.StartDirection = core.V(1, 1)
	if _, err := New(diag, sched, Hooks{}); err == nil {
		t.Error("New() should reject a diagonal start direction")
	}

	if _, err := New(DefaultConfig(), nil, Hooks{}); err == nil {
		t.Error("New() should reject a nil scheduler")
	}
}

func TestNewGameInitialState(t *testing.T) {
	g, sched, _ := newTestGame(t, 20, 19)

	if g.State() != StateReady {
		t.Errorf("State() = %v, expected ready", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if sched.Pending() != 0 {
		t.Error("A ready game should not have a timer")
	}

	snap := g.Snapshot()
	if len(snap.Body) != 2 {
		t.Errorf("Snake length = %d, expected 2", len(snap.Body))
	}
	if !snap.HasFood || g.snake.Occupies(snap.Food) {
		t.Errorf("Initial food %v must be on a free tile", snap.Food)
	}
}

func TestTickScenario(t *testing.T) {
	g, sched, _ := newTestGame(t, 4, 4)
	g.snake = newSnakeFromBody([]core.Vec{core.V(2, 2), core.V(2, 1)}, core.Up)
	g.food = core.V(0, 3)

	g.Resume()
	if !g.Steer(core.Right) {
		t.Fatal("Steer(right) should be accepted while moving up")
	}

	sched.Advance(g.TickInterval())

	body := g.Snapshot().Body
	if len(body) != 2 || body[0] != core.V(2, 1) || body[1] != core.V(3, 1) {
		t.Errorf("Body after one turn = %v, expected [(2,1) (3,1)]", body)
	}
}

func TestLengthInvariant(t *testing.T) {
	g, _, _ := newTestGame(t, 10, 10)
	g.snake = newSnakeFromBody([]core.Vec{core.V(5, 6), core.V(5, 5)}, core.Up)
	g.state = StateRunning

	// Non-eating turn keeps the length.
	g.food = core.V(0, 0)
	g.Turn()
	if g.snake.Len() != 2 {
		t.Errorf("Length after non-eating turn = %d, expected 2", g.snake.Len())
	}

	// Eating turn grows by exactly one.
	g.food = g.snake.Head().Add(core.Up)
	g.Turn()
	if g.snake.Len() != 3 {
		t.Errorf("Length after eating = %d, expected 3", g.snake.Len())
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if g.snake.Occupies(g.food) {
		t.Errorf("New food %v spawned on the snake", g.food)
	}
}

func TestChasingTailIsNotCollision(t *testing.T) {
	g, _, log := newTestGame(t, 10, 10)
	g.snake = newSnakeFromBody([]core.Vec{core.V(1, 1), core.V(2, 1), core.V(2, 2), core.V(1, 2)}, core.Left)
	g.food = core.V(8, 8)
	g.state = StateRunning
	g.snake.SetNextDir(core.Up)

	g.Turn()

	if g.State() != StateRunning {
		t.Errorf("Moving into the vacated tail tile should not end the game, state = %v", g.State())
	}
	if len(log.ended) != 0 {
		t.Error("Ended hook should not fire")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g, sched, log := newTestGame(t, 10, 10)
	g.snake = newSnakeFromBody([]core.Vec{
		core.V(3, 3), core.V(1, 1), core.V(2, 1), core.V(2, 2), core.V(1, 2),
	}, core.Left)
	g.food = core.V(8, 8)
	g.Resume()
	g.Steer(core.Up)

	sched.Advance(g.TickInterval())

	if g.State() != StateEnded {
		t.Fatalf("State() = %v, expected ended", g.State())
	}
	if g.Reason() != EndCollision {
		t.Errorf("Reason() = %v, expected collision", g.Reason())
	}
	if len(log.ended) != 1 {
		t.Errorf("Ended hook fired %d times, expected 1", len(log.ended))
	}
	if sched.Pending() != 1 {
		t.Errorf("Only the game-over delay should be pending, got %d timers", sched.Pending())
	}
}

func TestCollisionWhileEatingKeepsScore(t *testing.T) {
	g, _, log := newTestGame(t, 10, 10)
	g.snake = newSnakeFromBody([]core.Vec{core.V(1, 1), core.V(2, 1), core.V(2, 2), core.V(1, 2)}, core.Left)
	g.state = StateRunning
	g.snake.SetNextDir(core.Up)
	// Food on the tail tile: eating keeps the tail, so the head lands on it.
	g.food = core.V(1, 1)

	g.Turn()

	if g.State() != StateEnded || g.Reason() != EndCollision {
		t.Fatalf("Expected collision end, got %v/%v", g.State(), g.Reason())
	}
	if g.Score() != 1 || log.endScore != 1 {
		t.Errorf("Score should stand at 1, got %d (hook %d)", g.Score(), log.endScore)
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	g, sched, log := newTestGame(t, 3, 3)
	g.snake = newSnakeFromBody([]core.Vec{
		core.V(0, 0), core.V(1, 0), core.V(2, 0),
		core.V(2, 1), core.V(1, 1), core.V(0, 1),
		core.V(0, 2), core.V(1, 2),
	}, core.Right)
	g.food = core.V(2, 2)
	g.Resume()

	sched.Advance(g.TickInterval())

	if g.State() != StateEnded || g.Reason() != EndBoardFull {
		t.Fatalf("Expected board-full end, got %v/%v", g.State(), g.Reason())
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if g.snake.Len() != 9 {
		t.Errorf("Snake should keep its grown length, got %d", g.snake.Len())
	}
	if g.Snapshot().HasFood {
		t.Error("Snapshot should report no food on a full board")
	}

	sched.Advance(DefaultEndDelay)
	if len(log.gameOver) != 1 || log.gameOver[0] != 1 {
		t.Errorf("GameOver hook = %v, expected [1]", log.gameOver)
	}
}

func TestGameOverAfterDelay(t *testing.T) {
	g, sched, log := newTestGame(t, 10, 10)
	g.state = StateRunning
	g.score = 4
	g.end(EndCollision)

	sched.Advance(DefaultEndDelay - time.Millisecond)
	if len(log.gameOver) != 0 {
		t.Fatal("GameOver fired before the delay")
	}

	sched.Advance(time.Millisecond)
	if len(log.gameOver) != 1 || log.gameOver[0] != 4 {
		t.Errorf("GameOver hook = %v, expected [4]", log.gameOver)
	}
}

func TestPauseResumePreservesState(t *testing.T) {
	g, sched, _ := newTestGame(t, 20, 19)
	g.Resume()
	sched.Advance(3 * g.TickInterval())

	g.Pause()
	if g.State() != StatePaused {
		t.Fatalf("State() = %v, expected paused", g.State())
	}
	if sched.Pending() != 0 {
		t.Errorf("Pause should cancel the turn timer, %d pending", sched.Pending())
	}

	before := g.Snapshot()
	sched.Advance(10 * g.TickInterval())
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Game state changed while paused")
	}

	// Steering is ignored while paused.
	if g.Steer(core.Left) {
		t.Error("Steer should be ignored while paused")
	}

	g.Resume()
	after := g.Snapshot()
	if after.State != StateRunning {
		t.Errorf("State after resume = %v, expected running", after.State)
	}
	before.State = StateRunning
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Resume should keep board state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestResumeKeepsSingleTimer(t *testing.T) {
	g, sched, _ := newTestGame(t, 20, 19)
	g.Resume()
	g.Resume()
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", sched.Pending())
	}

	g.Pause()
	g.Resume()
	if sched.Pending() != 1 {
		t.Errorf("Pending() after pause/resume = %d, expected 1", sched.Pending())
	}
}

func TestCloseCancelsTimers(t *testing.T) {
	g, sched, log := newTestGame(t, 10, 10)
	g.state = StateRunning
	g.end(EndCollision)

	g.Close()
	if sched.Pending() != 0 {
		t.Errorf("Close should cancel all timers, %d pending", sched.Pending())
	}

	sched.Advance(time.Minute)
	if len(log.gameOver) != 0 {
		t.Error("Closed game should not fire GameOver")
	}

	g2, sched2, _ := newTestGame(t, 10, 10)
	g2.Resume()
	g2.Close()
	if sched2.Pending() != 0 {
		t.Error("Close should cancel the turn timer")
	}
	g2.Resume()
	if sched2.Pending() != 0 {
		t.Error("A closed game should not restart")
	}
}

func TestNoReversalProperty(t *testing.T) {
	g, _, _ := newTestGame(t, 30, 30)
	g.state = StateRunning
	g.hasFood = false // keep the snake at length 2

	dirs := []core.Vec{core.Up, core.Down, core.Left, core.Right, core.Zero, core.V(1, 1)}
	rng := rand.New(rand.NewSource(99))

	prev := g.snake.PrevDir()
	for turn := 0; turn < 2000; turn++ {
		for n := rng.Intn(4); n > 0; n-- {
			g.Steer(dirs[rng.Intn(len(dirs))])
		}
		g.Turn()

		applied := g.snake.PrevDir()
		if applied == prev.Neg() {
			t.Fatalf("Turn %d: applied %v right after %v", turn, applied, prev)
		}
		if g.State() != StateRunning {
			t.Fatalf("Turn %d: a two-segment snake should never collide", turn)
		}
		prev = applied
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, sched, _ := newTestGame(t, 12, 12)
		g.Resume()
		steps := []core.Vec{core.Right, core.Down, core.Left, core.Up}
		for i := 0; i < 40 && g.State() == StateRunning; i++ {
			if i%5 == 0 {
				g.Steer(steps[(i/5)%len(steps)])
			}
			sched.Advance(g.TickInterval())
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same seed and inputs produced different games:\n%+v\n%+v", a, b)
	}
}

func TestRedrawSignalled(t *testing.T) {
	g, sched, log := newTestGame(t, 20, 19)
	g.Resume()
	base := log.redraws

	sched.Advance(3 * g.TickInterval())
	if log.redraws-base != 3 {
		t.Errorf("Expected one redraw per turn, got %d", log.redraws-base)
	}
}

func TestSteerAxes(t *testing.T) {
	g, _, _ := newTestGame(t, 20, 19)
	g.Resume()

	if !g.SteerAxes(core.AxisState{Horizontal: -1}) {
		t.Error("Left on the D-pad should be accepted while moving up")
	}
	if g.SteerAxes(core.AxisState{Vertical: 1, Horizontal: 1}) {
		t.Error("Diagonal D-pad state should be rejected")
	}
	if g.SteerAxes(core.AxisState{}) {
		t.Error("Neutral D-pad state should be rejected")
	}
	if g.snake.NextDir() != core.Left {
		t.Errorf("NextDir() = %v, expected left", g.snake.NextDir())
	}
}

func TestStateStrings(t *testing.T) {
	if StateRunning.String() != "running" || StateEnded.String() != "ended" {
		t.Error("Unexpected state names")
	}
	if EndBoardFull.String() != "board full" || EndCollision.String() != "collision" {
		t.Error("Unexpected end reason names")
	}
}
