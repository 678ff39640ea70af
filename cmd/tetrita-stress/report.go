package main

import (
	"cmp"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/tetrita/textboard"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Report struct {
	// Configuration
	Games    int
	Seed     uint64
	Bot      string
	MaxTicks uint64
	Workers  int

	// Results
	Results        []Result
	TotalTime      time.Duration
	Score          Stats
	Lines          Stats
	Ticks          Stats
	GameTime       Stats
	ShowBoard      bool
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarizes one measurement across all games.
type Stats struct {
	Mean    float64
	StdDev  float64
	Min     float64
	Median  float64
	P90     float64
	Max     float64
	Samples []float64
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	s.Mean, s.StdDev = stat.PopMeanStdDev(sorted, nil)
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
}

// Add records the results and fills the per-measurement summaries.
func (r *Report) Add(results []Result) {
	r.Results = append(r.Results, results...)
	for _, res := range results {
		r.Score.Samples = append(r.Score.Samples, float64(res.Final.Score))
		r.Lines.Samples = append(r.Lines.Samples, float64(res.Final.Lines))
		r.Ticks.Samples = append(r.Ticks.Samples, float64(res.Ticks))
		r.GameTime.Samples = append(r.GameTime.Samples, float64(res.Elapsed))
	}
	r.Score.Finalize()
	r.Lines.Finalize()
	r.Ticks.Finalize()
	r.GameTime.Finalize()
}

// Best returns the highest scoring game. Ties go to the lower seed.
func (r *Report) Best() *Result {
	if len(r.Results) == 0 {
		return nil
	}
	best := &r.Results[0]
	for i := range r.Results {
		res := &r.Results[i]
		if res.Final.Score > best.Final.Score || (res.Final.Score == best.Final.Score && res.Seed < best.Seed) {
			best = res
		}
	}
	return best
}

// TotalTicks sums the ticks of every game.
func (r *Report) TotalTicks() uint64 {
	var n uint64
	for _, res := range r.Results {
		n += res.Ticks
	}
	return n
}

// Unfinished counts games stopped by the tick limit.
func (r *Report) Unfinished() int {
	n := 0
	for _, res := range r.Results {
		if !res.Finished {
			n++
		}
	}
	return n
}

// TicksPerSecond is the aggregate simulation throughput.
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalTicks()) / r.TotalTime.Seconds()
}

// Top lists the n highest scoring games.
func (r *Report) Top(n int) *textboard.Table {
	sorted := slices.Clone(r.Results)
	slices.SortStableFunc(sorted, func(a, b Result) int {
		return cmp.Or(cmp.Compare(b.Final.Score, a.Final.Score), cmp.Compare(a.Seed, b.Seed))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	t := &textboard.Table{
		Header:     []string{"seed", "score", "level", "lines", "pieces", "ticks", "state"},
		RightAlign: []bool{true, true, true, true, true, true, false},
	}
	for _, res := range sorted {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(res.Seed),
			textboard.Number(res.Final.Score),
			textboard.Number(res.Final.Level),
			textboard.Number(res.Final.Lines),
			textboard.Number(res.Final.Locked),
			textboard.Number(res.Ticks),
			res.Final.State.String(),
		})
	}
	return t
}

// Systems averages the per-system timings over every game.
func (r *Report) Systems() *textboard.Table {
	type acc struct {
		count int64
		total time.Duration
		max   time.Duration
	}
	var names []string
	byName := map[string]*acc{}
	for _, res := range r.Results {
		if res.Stats == nil {
			continue
		}
		for _, sys := range res.Stats.Systems {
			a, ok := byName[sys.Name]
			if !ok {
				a = &acc{}
				byName[sys.Name] = a
				names = append(names, sys.Name)
			}
			a.count += sys.ExecutionCount
			a.total += sys.TotalDuration
			a.max = max(a.max, sys.MaxDuration)
		}
	}

	t := &textboard.Table{
		Header:     []string{"system", "runs", "avg", "max"},
		RightAlign: []bool{false, true, true, true},
	}
	for _, name := range names {
		a := byName[name]
		var avg time.Duration
		if a.count > 0 {
			avg = a.total / time.Duration(a.count)
		}
		t.Rows = append(t.Rows, []string{name, textboard.Number(a.count), avg.String(), a.max.String()})
	}
	return t
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetrita Stress Test Report

## Test Configuration
- **Games:** {{.Games}}
- **First Seed:** {{.Seed}}
- **Bot:** {{.Bot}}
- **Tick Limit:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}none{{end}}
- **Workers:** {{.Workers}}

## Performance Results
- **Total Ticks:** {{num .TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Throughput:** {{dec .TicksPerSecond 0}} ticks/s
- **Unfinished Games:** {{.Unfinished}}
- **Game Time:**
  - **Avg:** {{dur .GameTime.Mean}}
  - **Min:** {{dur .GameTime.Min}}
  - **Max:** {{dur .GameTime.Max}}

## Play Results
| measure | mean | std dev | min | median | p90 | max |
|---|---|---|---|---|---|---|
{{row "score" .Score}}
{{row "lines" .Lines}}
{{row "ticks" .Ticks}}

## Top Games
` + "```" + `
{{(.Top 10).String}}` + "```" + `

## Systems
` + "```" + `
{{.Systems.String}}` + "```" + `
{{with .BestBoard}}
## Best Final Board
` + "```" + `
{{.}}` + "```" + `
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"num": textboard.Number[uint64],
		"dec": textboard.Decimal,
		"dur": func(f float64) time.Duration {
			return time.Duration(f).Round(time.Microsecond)
		},
		"row": func(name string, s Stats) string {
			cells := []string{name}
			for _, v := range []float64{s.Mean, s.StdDev, s.Min, s.Median, s.P90, s.Max} {
				cells = append(cells, textboard.Decimal(v, 1))
			}
			return "| " + strings.Join(cells, " | ") + " |"
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// BestBoard draws the final board of the best game, or returns "" when boards are off.
func (r *Report) BestBoard() string {
	best := r.Best()
	if !r.ShowBoard || best == nil {
		return ""
	}
	return fmt.Sprintf("seed %d\n%s", best.Seed, textboard.ASCII.String(&best.Final))
}
