package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"time"

	"github.com/plus3/tetrita/inspect"
	"github.com/plus3/tetrita/logger"
)

func main() {
	games := flag.Int("games", 100, "The number of games to play.")
	seed := flag.Uint64("seed", 1, "The seed of the first game. Game i uses seed+i.")
	maxTicks := flag.Uint64("max-ticks", 200000, "Stop a game after this many ticks. Zero means no limit.")
	botKind := flag.String("bot", "greedy", "The player: greedy or random.")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "The number of games played at once.")
	tick := flag.Duration("tick", 0, "Pace games in real time with this tick interval. Zero runs as fast as possible.")
	inspectAddr := flag.String("inspect", "", "Serve the game being played on this address. Forces a single worker.")
	logMode := flag.String("log-mode", "silence", "Game log mode: dev, prod or silence.")
	progress := flag.Bool("progress", true, "Show a progress bar.")
	showBoard := flag.Bool("board", false, "Include the final board of the best game in the report.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	mode, err := logger.ParseMode(*logMode)
	if err != nil {
		log.Fatal(err)
	}
	if *games < 1 {
		log.Fatal("-games must be at least 1")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := &Session{
		Bot:      *botKind,
		MaxTicks: *maxTicks,
		Interval: *tick,
		Log:      logger.NewDefault(mode),
	}
	if !slices.Contains(botKinds, session.Bot) {
		log.Fatalf("unknown bot %q", session.Bot)
	}

	if *inspectAddr != "" {
		*workers = 1
		live := &liveSource{}
		session.Systems = live.Systems

		srv := inspect.New(*inspectAddr, live, inspect.WithLogger(session.Log))
		go func() {
			if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("inspect server: %v", err)
			}
		}()
		log.Printf("Inspecting games on %s", *inspectAddr)
	}

	report := &Report{
		Games:          *games,
		Seed:           *seed,
		Bot:            *botKind,
		MaxTicks:       *maxTicks,
		Workers:        max(1, min(*workers, *games)),
		ShowBoard:      *showBoard,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Playing %d games with the %s bot on %d workers...\n", *games, *botKind, report.Workers)
	start := time.Now()
	results, _, err := PlayAll(ctx, session, *seed, *games, report.Workers, *progress)
	if err != nil {
		log.Fatalf("Failed to play: %v", err)
	}
	report.TotalTime = time.Since(start)
	report.Add(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Games finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
