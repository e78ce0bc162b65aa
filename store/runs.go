// Package store persists benchmark results as zstd-compressed Parquet files.
//
// Files are always written under outDir/tmp first and renamed into outDir,
// so readers globbing outDir/*.parquet never see a partial file.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const schemaName = "benchmark_run_v1"

// RunRow is the outcome of one benchmark game.
type RunRow struct {
	RunID  string `parquet:"run_id,dict"`
	Solver string `parquet:"solver,dict"`
	Jitter string `parquet:"jitter,dict"`
	Size   int32  `parquet:"size"`
	Seed   int64  `parquet:"seed"`

	// Result is "finished", "killed" or the error that stopped the game.
	Result string `parquet:"result,dict"`
	Error  string `parquet:"error,optional"`

	Steps     int64 `parquet:"steps"`
	FoodEaten int32 `parquet:"food_eaten"`
	SnakeLen  int32 `parquet:"snake_len"`

	Plans     int64 `parquet:"plans"`
	PlanNanos int64 `parquet:"plan_nanos"`
	DeadEnds  int32 `parquet:"dead_ends"`
	Overrides int32 `parquet:"overrides"`

	FinishedAtMs int64 `parquet:"finished_at_ms"`
}

func writerOptions() []parquet.WriterOption {
	return []parquet.WriterOption{
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schemaName),
	}
}

func batchName() string {
	return fmt.Sprintf("runs_%d.parquet", time.Now().UnixNano())
}

// WriteRunsAtomic writes rows into a new file in outDir and returns its path.
func WriteRunsAtomic(outDir string, rows []RunRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := batchName()
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")

	if err := parquet.WriteFile(tmpPath, rows, writerOptions()...); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}
	return finalPath, nil
}

// ReadRuns loads every row of a file written by this package.
func ReadRuns(path string) ([]RunRow, error) {
	rows, err := parquet.ReadFile[RunRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows, nil
}

// ReadRunsDir loads the rows of every finished file in dir.
func ReadRunsDir(dir string) ([]RunRow, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.parquet"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	var out []RunRow
	for _, p := range paths {
		rows, err := ReadRuns(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}
