package report

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arduano/snake-solver/store"
)

func TestSummaries(t *testing.T) {
	dir := t.TempDir()
	rows := []store.RunRow{
		{Solver: "spantree", Jitter: "none", Size: 10, Result: "finished", Steps: 100, Plans: 10, PlanNanos: 10_000},
		{Solver: "spantree", Jitter: "none", Size: 10, Result: "finished", Steps: 300, Plans: 10, PlanNanos: 30_000, DeadEnds: 1},
		{Solver: "zigzag", Jitter: "none", Size: 10, Result: "killed", Steps: 50},
	}
	if _, err := store.WriteRunsAtomic(dir, rows[:2]); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.WriteRunsAtomic(filepath.Join(dir, "zigzag"), rows[2:]); err != nil {
		t.Fatalf("write: %v", err)
	}

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if db.Files() != 2 {
		t.Fatalf("files=%d want=2", db.Files())
	}

	sums, err := db.Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("summaries=%+v", sums)
	}
	st := sums[0]
	if st.Solver != "spantree" || st.Runs != 2 || st.Finished != 2 || st.MinSteps != 100 || st.MaxSteps != 300 || st.AvgSteps != 200 {
		t.Fatalf("spantree summary=%+v", st)
	}
	// (1000 + 3000) / 2 ns per plan over 100 cells.
	if st.PlanNsPerCell != 20 || st.DeadEnds != 1 {
		t.Fatalf("spantree timing=%+v", st)
	}
	if zz := sums[1]; zz.Solver != "zigzag" || zz.Killed != 1 || zz.PlanNsPerCell != 0 {
		t.Fatalf("zigzag summary=%+v", zz)
	}

	var buf bytes.Buffer
	if err := Write(&buf, sums); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "spantree") || !strings.Contains(buf.String(), "zigzag") {
		t.Fatalf("table:\n%s", buf.String())
	}
}

func TestOpen_EmptyRoot(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	sums, err := db.Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(sums) != 0 {
		t.Fatalf("summaries=%+v want none", sums)
	}
}
