// Command autoplay watches a solver play a single game, either in a
// bubbletea view, a raw tcell screen or headless.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arduano/snake-solver/autoplay"
	"github.com/arduano/snake-solver/config"
	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/logging"
	"github.com/arduano/snake-solver/render"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/solver/catalog"
)

// gameFactory starts a fresh game; the viewers call it again on restart.
type gameFactory func() (*autoplay.Player, error)

func main() {
	size := flag.Int("size", config.EnvIntOrDefault("SNAKE_SIZE", 20), "Board size (even, at least 4)")
	solverName := flag.String("solver", config.EnvOrDefault("SNAKE_SOLVER", catalog.SpanningTree), "Solver: spantree, zigzag or randomtree")
	jitterFlag := flag.String("jitter", config.EnvOrDefault("SNAKE_JITTER", "indirect:10"), "Jitter policy: none, indirect:N or always:N")
	seed := flag.Int64("seed", config.EnvInt64OrDefault("SNAKE_SEED", 0), "Seed for food and tree growth (0 = time based)")
	speed := flag.Duration("speed", config.EnvDurationOrDefault("SNAKE_SPEED", 30*time.Millisecond), "Delay between moves")
	ui := flag.String("ui", config.EnvOrDefault("SNAKE_UI", "tea"), "Viewer: tea, tcell or none")
	logFormat := flag.String("log-format", config.EnvOrDefault("LOG_FORMAT", "text"), "Log format: text, json or pretty")
	logLevel := flag.String("log-level", config.EnvOrDefault("LOG_LEVEL", "info"), "Log level")
	logPath := flag.String("log-path", config.EnvOrDefault("SNAKE_LOG_PATH", "autoplay.log"), "Log file used while a viewer owns the terminal")
	flag.Parse()

	jitter, err := solver.ParseJitter(*jitterFlag)
	if err != nil {
		log.Fatalf("Invalid -jitter: %v", err)
	}
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}

	var logOut io.Writer = os.Stderr
	if *ui != "none" {
		f, err := os.OpenFile(*logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
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

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	games := int64(0)
	newGame := func() (*autoplay.Player, error) {
		gameSeed := baseSeed + games
		games++
		return startGame(*size, *solverName, jitter, gameSeed, logger)
	}

	switch *ui {
	case "tea":
		m, err := newModel(newGame, *solverName, *speed)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	case "tcell":
		if err := runTcell(newGame, *speed); err != nil {
			log.Fatalf("tcell viewer: %v", err)
		}
	case "none":
		if err := runHeadless(newGame, os.Stdout); err != nil {
			log.Fatalf("Game failed: %v", err)
		}
	default:
		log.Fatalf("Unknown -ui %q", *ui)
	}
}

func startGame(size int, solverName string, jitter solver.Jitter, seed int64, logger *slog.Logger) (*autoplay.Player, error) {
	cfg := game.DefaultWorldConfig
	cfg.Size = size
	rng := rand.New(rand.NewSource(seed))
	w, err := game.NewWorld(cfg, rng)
	if err != nil {
		return nil, err
	}
	s, err := catalog.New(solverName, catalog.Options{Jitter: jitter, Seed: seed + 1, Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.Info("new game", "size", size, "solver", solverName, "jitter", jitter.String(), "seed", seed)
	return autoplay.NewPlayer(w, s, rng), nil
}

func runHeadless(newGame gameFactory, out io.Writer) error {
	p, err := newGame()
	if err != nil {
		return err
	}
	start := time.Now()
	limit := p.World().Cells.Len() * p.World().Cells.Len()
	for i := 0; p.State() == autoplay.Playing; i++ {
		if i >= limit {
			return autoplay.ErrStepLimit
		}
		if _, err := p.Step(); err != nil {
			return err
		}
	}

	w := p.World()
	fmt.Fprint(out, render.Board(w, render.Options{}))
	fmt.Fprintf(out, "%s %s in %s, %d plans\n", p.State(), render.Summary(w), time.Since(start).Round(time.Millisecond), p.Plans())
	if p.State() == autoplay.Killed {
		return fmt.Errorf("snake died on turn %d: %w", w.Turn, errKilled)
	}
	return nil
}

var errKilled = errors.New("killed")

// stepResultText is shown next to the board once the game ends.
func stepResultText(r rules.StepResult) string {
	switch r {
	case rules.Finished:
		return "board filled"
	case rules.Killed:
		return "snake died"
	default:
		return ""
	}
}
