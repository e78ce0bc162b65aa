package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arduano/snake-solver/autoplay"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/store"
)

func TestBuildJobs(t *testing.T) {
	jobs := buildJobs([]string{"spantree", "zigzag"}, []int{10, 20}, 3, 100)
	if len(jobs) != 12 {
		t.Fatalf("jobs=%d want=12", len(jobs))
	}
	seen := make(map[int64]bool)
	for _, j := range jobs {
		if seen[j.seed] {
			t.Fatalf("duplicate seed %d", j.seed)
		}
		seen[j.seed] = true
	}
}

func TestRunJob_ZigZagFinishes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	res, err := runJob(context.Background(), job{solver: "zigzag", size: 6, seed: 1}, solver.NoJitter(), 0, logger)
	if err != nil {
		t.Fatalf("runJob: %v", err)
	}
	if res.Result != rules.Finished {
		t.Fatalf("result=%v", res.Result)
	}
	row := toRow("r", job{solver: "zigzag", size: 6, seed: 1}, solver.NoJitter(), res, nil)
	if row.Result != "finished" || row.Size != 6 || row.Steps != int64(res.Steps) || row.Jitter != "none" {
		t.Fatalf("row=%+v", row)
	}
}

func TestToRow_RecordsErrors(t *testing.T) {
	row := toRow("r", job{solver: "spantree", size: 10}, solver.NoJitter(), autoplay.GameResult{}, errors.New("step limit reached"))
	if row.Result != "error" || row.Error != "step limit reached" {
		t.Fatalf("row=%+v", row)
	}
}

func TestParquetWriterLoop_FlushesRemainder(t *testing.T) {
	dir := t.TempDir()
	in := make(chan store.RunRow, 5)
	for i := 0; i < 5; i++ {
		in <- store.RunRow{Solver: "zigzag", Size: 6, Seed: int64(i), Result: "finished"}
	}
	close(in)
	parquetWriterLoop(slog.New(slog.NewTextHandler(io.Discard, nil)), dir, 2, in)

	rows, err := store.ReadRunsDir(dir)
	if err != nil {
		t.Fatalf("ReadRunsDir: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows=%d want=5", len(rows))
	}
}

func TestModel_CountsUpdates(t *testing.T) {
	updates := make(chan GameUpdate)
	m := initialModel(updates, 3)

	next, _ := m.Update(GameUpdate{Job: job{solver: "zigzag", size: 6}, Result: autoplay.GameResult{Result: rules.Finished}})
	next, _ = next.Update(GameUpdate{Job: job{solver: "zigzag", size: 6}, Result: autoplay.GameResult{Result: rules.Killed}})
	next, _ = next.Update(doneMsg{})
	got := next.(model)
	if got.gamesPlayed != 2 || got.finished != 1 || got.killed != 1 || !got.done {
		t.Fatalf("model=%+v", got)
	}
	if _, cmd := got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("q did not quit")
	}
}
