package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) Press(b tetris.Button)   { r.events = append(r.events, "+"+b.String()) }
func (r *recorder) Release(b tetris.Button) { r.events = append(r.events, "-"+b.String()) }

type countingSystem struct {
	log   *[]string
	name  string
	ticks []uint64
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
	s.ticks = append(s.ticks, frame.Tick)
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	var order []string
	first := &countingSystem{log: &order, name: "first"}
	second := &countingSystem{log: &order, name: "second"}

	s := loop.NewScheduler(&recorder{})
	s.Register(first)
	s.Register(second)

	s.Once(1.0 / 60)
	s.Once(1.0 / 60)

	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	assert.Equal(t, []uint64{1, 2}, first.ticks)
	assert.Equal(t, []uint64{1, 2}, second.ticks)
}

func TestSchedulerFlushesCommandsAfterSystems(t *testing.T) {
	r := &recorder{}
	s := loop.NewScheduler(r)

	var seenDuringTick int
	s.Register(loop.SystemFunc(func(frame *loop.Frame) {
		frame.Commands.Press(tetris.ButtonLeft)
		frame.Commands.Defer(func() { r.events = append(r.events, "deferred") })
		frame.Commands.Release(tetris.ButtonLeft)
	}))
	s.Register(loop.SystemFunc(func(frame *loop.Frame) {
		seenDuringTick = len(r.events)
		assert.Equal(t, 3, frame.Commands.Len())
	}))

	s.Once(0)

	assert.Equal(t, 0, seenDuringTick)
	assert.Equal(t, []string{"+Left", "-Left", "deferred"}, r.events)

	s.Once(0)
	assert.Len(t, r.events, 6, "every tick starts with an empty buffer")
}

func TestSchedulerRejectsNilController(t *testing.T) {
	assert.Panics(t, func() { loop.NewScheduler(nil) })
}

func TestTickSystemDrivesGame(t *testing.T) {
	g := tetris.New(tetris.WithSeed(3))
	s := loop.NewScheduler(g)
	s.Register(&loop.TickSystem{Game: g})

	for range tetris.IntroFrames + 1 {
		s.Once(0)
	}
	require.Equal(t, tetris.StartQuery, g.State())

	s.Register(loop.SystemFunc(func(frame *loop.Frame) {
		frame.Commands.Release(tetris.ButtonAny)
	}))
	s.Once(0)
	assert.Equal(t, tetris.Play, g.State())
}

func TestSchedulerRun(t *testing.T) {
	var order []string
	sys := &countingSystem{log: &order, name: "sys"}

	s := loop.NewScheduler(&recorder{})
	s.Register(sys)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}

	assert.NotEmpty(t, sys.ticks)
	assert.Equal(t, uint64(len(sys.ticks)), s.Stats().Ticks)
}

func TestSchedulerStats(t *testing.T) {
	s := loop.NewScheduler(&recorder{})
	s.Register(loop.SystemFunc(func(*loop.Frame) { time.Sleep(time.Millisecond) }))
	s.Register(&loop.TickSystem{Game: tetris.New()})

	t.Run("before any tick", func(t *testing.T) {
		stats := s.Stats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Zero(t, stats.Ticks)
		assert.Zero(t, stats.Systems[0].MinDuration)
	})

	for range 3 {
		s.Once(0)
	}

	stats := s.Stats()
	assert.Equal(t, uint64(3), stats.Ticks)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)

	sleeper := stats.Systems[0]
	assert.Equal(t, "SystemFunc", sleeper.Name)
	assert.Equal(t, int64(3), sleeper.ExecutionCount)
	assert.GreaterOrEqual(t, sleeper.MinDuration, time.Millisecond)
	assert.LessOrEqual(t, sleeper.MinDuration, sleeper.AvgDuration)
	assert.LessOrEqual(t, sleeper.AvgDuration, sleeper.MaxDuration)

	assert.Equal(t, "TickSystem", stats.Systems[1].Name)
}
