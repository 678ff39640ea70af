package debugui

import (
	"testing"
	"time"

	"github.com/plus3/tetrita/loop"
	"github.com/stretchr/testify/assert"
)

func TestSchedulerStatsHistory(t *testing.T) {
	ss := NewSchedulerStats(func() *loop.Stats { return &loop.Stats{} }, 3)
	assert.Zero(t, ss.average())

	start := time.Unix(0, 0)
	ss.record(start)
	assert.Zero(t, ss.average(), "the first frame has no predecessor")

	ss.record(start.Add(10 * time.Millisecond))
	ss.record(start.Add(30 * time.Millisecond))
	assert.InDelta(t, 15, ss.average(), 0.001)

	ss.record(start.Add(60 * time.Millisecond))
	ss.record(start.Add(100 * time.Millisecond))
	assert.Equal(t, []float32{40, 20, 30}, ss.history)
	assert.InDelta(t, 30, ss.average(), 0.001)
}
