package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrita/loop"
)

// SchedulerStats plots tick times and lists per-system timings.
type SchedulerStats struct {
	stats   func() *loop.Stats
	history []float32
	next    int
	last    time.Time
}

// NewSchedulerStats keeps historyFrames frame times for the plot.
func NewSchedulerStats(stats func() *loop.Stats, historyFrames int) *SchedulerStats {
	return &SchedulerStats{
		stats:   stats,
		history: make([]float32, historyFrames),
	}
}

// record stores the time since the previous frame in milliseconds.
func (ss *SchedulerStats) record(now time.Time) {
	if !ss.last.IsZero() {
		ss.history[ss.next] = float32(now.Sub(ss.last).Seconds() * 1000)
		ss.next = (ss.next + 1) % len(ss.history)
	}
	ss.last = now
}

func (ss *SchedulerStats) average() float32 {
	var sum float32
	var n int
	for _, ms := range ss.history {
		if ms > 0 {
			sum += ms
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float32(n)
}

func (ss *SchedulerStats) Render() {
	ss.record(time.Now())

	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)
	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ss.stats()
	avg := ss.average()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ss.history[0], int32(len(ss.history)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}
		imgui.EndTable()
	}

	imgui.End()
}
