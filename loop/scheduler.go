package loop

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// Stats describes what the scheduler has run so far.
type Stats struct {
	Ticks           uint64        `json:"ticks"`
	SystemCount     int           `json:"system_count"`
	TotalExecutions int64         `json:"total_executions"`
	Systems         []SystemStats `json:"systems"`
}

// SystemStats holds the timings of one system.
type SystemStats struct {
	Name           string        `json:"name"`
	ExecutionCount int64         `json:"execution_count"`
	MinDuration    time.Duration `json:"min_duration"`
	MaxDuration    time.Duration `json:"max_duration"`
	AvgDuration    time.Duration `json:"avg_duration"`
	LastDuration   time.Duration `json:"last_duration"`
	TotalDuration  time.Duration `json:"total_duration"`
}

type timing struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *timing) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

// Scheduler runs its systems once per tick and then flushes the tick's commands into the
// target controller.
type Scheduler struct {
	target  Controller
	systems []System

	mu      sync.Mutex
	tick    uint64
	timings []*timing
}

// NewScheduler creates a scheduler whose commands are delivered to target.
func NewScheduler(target Controller) *Scheduler {
	if target == nil {
		panic("loop: nil controller")
	}
	return &Scheduler{target: target}
}

// Register appends a system. It must not be called while the scheduler is running.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	s.mu.Lock()
	s.timings = append(s.timings, &timing{
		name: systemName(system),
		min:  time.Duration(1<<63 - 1),
	})
	s.mu.Unlock()
}

func systemName(system System) string {
	if n, ok := system.(interface{ Name() string }); ok {
		return n.Name()
	}
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs one tick with the given delta time.
func (s *Scheduler) Once(dt float64) {
	s.mu.Lock()
	s.tick++
	frame := newFrame(s.tick, dt)
	s.mu.Unlock()

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		elapsed := time.Since(start)

		s.mu.Lock()
		s.timings[i].record(elapsed)
		s.mu.Unlock()
	}

	frame.Commands.Flush(s.target)
}

// Run ticks at the given interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

// Stats returns a copy of the execution statistics. It is safe to call from any goroutine.
func (s *Scheduler) Stats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &Stats{
		Ticks:       s.tick,
		SystemCount: len(s.timings),
		Systems:     make([]SystemStats, len(s.timings)),
	}
	for i, t := range s.timings {
		var avg time.Duration
		minimum := t.min
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		} else {
			minimum = 0
		}
		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    minimum,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		}
		stats.TotalExecutions += t.count
	}
	return stats
}
