package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// Result is the outcome of one played game.
type Result struct {
	Seed     uint64
	Ticks    uint64
	Elapsed  time.Duration
	Finished bool // false when the tick limit cut the game short
	Final    tetris.Snapshot
	Stats    *loop.Stats
}

// Session configures how games are played.
type Session struct {
	Bot      string
	MaxTicks uint64
	// Interval paces the scheduler in real time. Zero runs ticks back to back.
	Interval time.Duration
	// Systems are extra systems registered after the bot, per game.
	Systems func(g *tetris.Game) []loop.System
	Log     *slog.Logger
}

// Play runs one game with the given seed until the bot quits it, the tick limit is hit or
// ctx is cancelled.
func (s *Session) Play(ctx context.Context, seed uint64) (Result, error) {
	log := s.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := tetris.New(
		tetris.WithSeed(seed),
		tetris.WithStartState(tetris.StartQuery),
		tetris.WithLogger(log.With("seed", seed)),
	)
	bot, err := newBot(s.Bot, g, seed)
	if err != nil {
		return Result{}, err
	}

	sched := loop.NewScheduler(g)
	sched.Register(&loop.TickSystem{Game: g})
	sched.Register(bot)
	if s.Systems != nil {
		for _, sys := range s.Systems(g) {
			sched.Register(sys)
		}
	}

	start := time.Now()
	if s.Interval > 0 {
		s.paced(ctx, sched, g)
	} else {
		s.fast(ctx, sched, g)
	}

	stats := sched.Stats()
	res := Result{
		Seed:     seed,
		Ticks:    stats.Ticks,
		Elapsed:  time.Since(start),
		Finished: g.State() == tetris.Done,
		Final:    g.Snapshot(),
		Stats:    stats,
	}
	g.Close()
	return res, nil
}

func (s *Session) fast(ctx context.Context, sched *loop.Scheduler, g *tetris.Game) {
	const dt = 1.0 / 60
	for tick := uint64(0); g.State() != tetris.Done; tick++ {
		if s.MaxTicks > 0 && tick >= s.MaxTicks {
			return
		}
		if tick%1024 == 0 && ctx.Err() != nil {
			return
		}
		sched.Once(dt)
	}
}

func (s *Session) paced(ctx context.Context, sched *loop.Scheduler, g *tetris.Game) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched.Register(loop.SystemFunc(func(frame *loop.Frame) {
		if g.State() == tetris.Done || (s.MaxTicks > 0 && frame.Tick >= s.MaxTicks) {
			frame.Commands.Defer(cancel)
		}
	}))
	sched.Run(ctx, s.Interval)
}
