package main

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/plus3/tetrita/inspect"
	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// PlayAll plays games seeded first, first+1, ... on the given number of workers. Results
// are returned in seed order.
func PlayAll(ctx context.Context, s *Session, first uint64, games, workers int, progress bool) ([]Result, time.Duration, error) {
	workers = max(1, min(workers, games))
	results := make([]Result, games)
	jobs := make(chan int, games)

	bar := pb.StartNew(games)
	if !progress {
		bar.SetWriter(io.Discard)
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := s.Play(ctx, first+uint64(i))
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				results[i] = res
				bar.Increment()
			}
		}()
	}

	for i := range games {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	if firstErr != nil {
		return nil, used, firstErr
	}
	return results, used, nil
}

// liveSource follows whichever game is being played, for the inspection server.
type liveSource struct {
	current atomic.Pointer[inspect.Publisher]
}

func (l *liveSource) Latest() *tetris.Snapshot {
	p := l.current.Load()
	if p == nil {
		return nil
	}
	return p.Latest()
}

// Systems registers a fresh publisher with each game and points the source at it.
func (l *liveSource) Systems(g *tetris.Game) []loop.System {
	p := inspect.NewPublisher(g)
	p.Publish()
	l.current.Store(p)
	return []loop.System{p}
}
