// Command benchmark plays many games per solver and board size in parallel
// and records every outcome to parquet.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arduano/snake-solver/autoplay"
	"github.com/arduano/snake-solver/config"
	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/logging"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/solver/catalog"
	"github.com/arduano/snake-solver/store"
)

var totalMoves atomic.Int64
var totalGames atomic.Int64

type job struct {
	solver string
	size   int
	seed   int64
}

type GameUpdate struct {
	WorkerID int
	Job      job
	Result   autoplay.GameResult
	Err      error
}

func main() {
	outDir := flag.String("out-dir", config.EnvOrDefault("BENCH_OUT_DIR", "data/bench"), "Directory for result parquet batches")
	sizesFlag := flag.String("sizes", config.EnvOrDefault("BENCH_SIZES", "10,20,40"), "Comma separated board sizes (even)")
	solversFlag := flag.String("solvers", config.EnvOrDefault("BENCH_SOLVERS", catalog.SpanningTree), "Comma separated solvers: spantree, zigzag, randomtree")
	jitterFlag := flag.String("jitter", config.EnvOrDefault("BENCH_JITTER", "none"), "Jitter policy: none, indirect:N or always:N")
	runs := flag.Int("runs", config.EnvIntOrDefault("BENCH_RUNS", 10), "Games per solver and size")
	workers := flag.Int("workers", config.EnvIntOrDefault("BENCH_WORKERS", runtime.NumCPU()), "Parallel games")
	gamesPerFlush := flag.Int("games-per-flush", config.EnvIntOrDefault("BENCH_GAMES_PER_FLUSH", 50), "Games buffered per parquet file")
	maxSteps := flag.Int("max-steps", config.EnvIntOrDefault("BENCH_MAX_STEPS", 0), "Per-game step limit (0 = area squared)")
	seed := flag.Int64("seed", config.EnvInt64OrDefault("BENCH_SEED", time.Now().UnixNano()), "Base seed; game i uses seed+i")
	useTUI := flag.Bool("tui", config.EnvBoolOrDefault("BENCH_TUI", false), "Show a live progress view")
	logFormat := flag.String("log-format", config.EnvOrDefault("LOG_FORMAT", "text"), "Log format: text, json or pretty")
	logLevel := flag.String("log-level", config.EnvOrDefault("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	sizes, err := config.ParseInts(*sizesFlag)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}
	jitter, err := solver.ParseJitter(*jitterFlag)
	if err != nil {
		log.Fatalf("Invalid -jitter: %v", err)
	}
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}

	// The TUI owns the terminal, so logs go to a file while it runs.
	logOut := os.Stderr
	if *useTUI {
		f, err := os.OpenFile("benchmark.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
		log.SetOutput(f)
	}
	logger, err := logging.New(logOut, *logFormat, level)
	if err != nil {
		log.Fatalf("Invalid -log-format: %v", err)
	}

	solvers := config.SplitList(*solversFlag)
	for _, name := range solvers {
		if _, err := catalog.New(name, catalog.Options{}); err != nil {
			log.Fatalf("Invalid -solvers: %v", err)
		}
	}

	jobs := buildJobs(solvers, sizes, *runs, *seed)
	if *workers <= 0 {
		*workers = 1
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	runID := fmt.Sprintf("bench_%d", time.Now().UnixNano())
	logger.Info("starting benchmark", "run_id", runID, "games", len(jobs), "workers", *workers,
		"sizes", sizes, "solvers", solvers, "jitter", jitter.String(), "out_dir", *outDir)

	updates := make(chan GameUpdate, *workers)
	writeReqs := make(chan store.RunRow, (*workers)*4)

	writerDone := make(chan struct{})
	go func() {
		parquetWriterLoop(logger, *outDir, *gamesPerFlush, writeReqs)
		close(writerDone)
	}()

	jobCh := make(chan job)
	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobCh <- j:
			}
		}
	}()

	var workerWG sync.WaitGroup
	for i := 0; i < *workers; i++ {
		workerWG.Add(1)
		go func(workerID int) {
			defer workerWG.Done()
			for j := range jobCh {
				res, err := runJob(ctx, j, jitter, *maxSteps, logger)
				totalGames.Add(1)
				if ctx.Err() != nil {
					// Games cut short by shutdown are not results.
					return
				}
				writeReqs <- toRow(runID, j, jitter, res, err)

				select {
				case updates <- GameUpdate{WorkerID: workerID, Job: j, Result: res, Err: err}:
				default:
				}
			}
		}(i)
	}

	go func() {
		workerWG.Wait()
		close(writeReqs)
		close(updates)
	}()

	if *useTUI {
		p := tea.NewProgram(initialModel(updates, len(jobs)), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
		// Quitting the view stops the run.
		cancel()
		for range updates {
		}
	} else {
		logProgress(ctx, logger, updates, len(jobs))
	}

	<-writerDone
	logger.Info("benchmark complete", "games", totalGames.Load(), "moves", totalMoves.Load())
}

func buildJobs(solvers []string, sizes []int, runs int, seed int64) []job {
	jobs := make([]job, 0, len(solvers)*len(sizes)*runs)
	n := int64(0)
	for r := 0; r < runs; r++ {
		for _, size := range sizes {
			for _, name := range solvers {
				jobs = append(jobs, job{solver: name, size: size, seed: seed + n})
				n++
			}
		}
	}
	return jobs
}

func runJob(ctx context.Context, j job, jitter solver.Jitter, maxSteps int, logger *slog.Logger) (autoplay.GameResult, error) {
	s, err := catalog.New(j.solver, catalog.Options{
		Jitter: jitter,
		Seed:   j.seed ^ 0x5eed,
		Logger: logger.With("solver", j.solver, "size", j.size, "seed", j.seed),
	})
	if err != nil {
		return autoplay.GameResult{}, err
	}
	cfg := autoplay.Config{
		World:    game.WorldConfig{Size: j.size, InitialLength: game.DefaultWorldConfig.InitialLength, GrowthPerFood: game.DefaultWorldConfig.GrowthPerFood},
		Seed:     j.seed,
		MaxSteps: maxSteps,
		OnStep:   func(*autoplay.Player, rules.StepResult) { totalMoves.Add(1) },
	}
	return autoplay.Play(ctx, cfg, s)
}

func toRow(runID string, j job, jitter solver.Jitter, res autoplay.GameResult, err error) store.RunRow {
	row := store.RunRow{
		RunID:        runID,
		Solver:       j.solver,
		Jitter:       jitter.String(),
		Size:         int32(j.size),
		Seed:         j.seed,
		Result:       res.Result.String(),
		Steps:        int64(res.Steps),
		FoodEaten:    int32(res.FoodEaten),
		SnakeLen:     int32(res.SnakeLen),
		Plans:        int64(res.Plans),
		PlanNanos:    res.PlanTime.Nanoseconds(),
		DeadEnds:     int32(res.DeadEnds),
		Overrides:    int32(res.Overrides),
		FinishedAtMs: time.Now().UnixMilli(),
	}
	if err != nil {
		row.Result = "error"
		row.Error = err.Error()
	}
	return row
}

func logProgress(ctx context.Context, logger *slog.Logger, updates <-chan GameUpdate, total int) {
	startTime := time.Now()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutdown requested, waiting for workers")
			for range updates {
			}
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			if u.Err != nil {
				logger.Warn("game failed", "worker", u.WorkerID, "solver", u.Job.solver, "size", u.Job.size, "seed", u.Job.seed, "err", u.Err)
				continue
			}
			if u.Result.Result == rules.Killed {
				logger.Warn("snake died", "solver", u.Job.solver, "size", u.Job.size, "seed", u.Job.seed, "steps", u.Result.Steps, "food", u.Result.FoodEaten)
				continue
			}
			logger.Debug("game finished", "worker", u.WorkerID, "solver", u.Job.solver, "size", u.Job.size, "steps", u.Result.Steps)
		case <-ticker.C:
			elapsed := time.Since(startTime)
			logger.Info("progress",
				"games", fmt.Sprintf("%d/%d", totalGames.Load(), total),
				"moves_per_sec", fmt.Sprintf("%.0f", float64(totalMoves.Load())/elapsed.Seconds()),
				"elapsed", elapsed.Round(time.Second))
		}
	}
}

func parquetWriterLoop(logger *slog.Logger, outDir string, gamesPerFlush int, in <-chan store.RunRow) {
	if gamesPerFlush <= 0 {
		gamesPerFlush = 50
	}

	var bw *store.BatchWriter
	flush := func(reason string) {
		if bw == nil {
			return
		}
		games := bw.Rows()
		outPath, err := bw.Finalize()
		bw = nil
		if err != nil {
			logger.Error("parquet flush failed", "reason", reason, "games", games, "err", err)
			return
		}
		logger.Info("parquet flush ok", "reason", reason, "path", outPath, "games", games)
	}

	for row := range in {
		if bw == nil {
			var err error
			if bw, err = store.NewBatchWriter(outDir); err != nil {
				logger.Error("open parquet batch failed", "err", err)
				continue
			}
		}
		if err := bw.Write(row); err != nil {
			logger.Error("parquet write failed", "err", err)
			continue
		}
		if bw.Rows() >= gamesPerFlush {
			flush("count")
		}
	}
	flush("final")
}
