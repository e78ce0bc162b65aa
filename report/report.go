// Package report aggregates benchmark parquet files with an in-memory DuckDB.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"text/tabwriter"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Summary aggregates every run of one solver configuration on one board size.
type Summary struct {
	Solver string
	Jitter string
	Size   int

	Runs     int64
	Finished int64
	Killed   int64

	MinSteps int64
	AvgSteps float64
	MaxSteps int64

	// PlanNsPerCell is the mean planning time per call divided by the
	// board area.
	PlanNsPerCell float64

	DeadEnds  int64
	Overrides int64
}

type DB struct {
	db    *sql.DB
	files int
}

// Open exposes every finished parquet file below roots as the view runs.
func Open(roots ...string) (*DB, error) {
	files, err := findParquet(roots)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	_, _ = db.Exec("PRAGMA threads=4")

	if err := createRunsView(db, files); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db, files: len(files)}, nil
}

func findParquet(roots []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "tmp" {
				return filepath.SkipDir
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".parquet") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	}
	return files, nil
}

func createRunsView(db *sql.DB, files []string) error {
	if len(files) == 0 {
		_, err := db.Exec(`CREATE OR REPLACE VIEW runs AS
			SELECT * FROM (
				SELECT
					NULL::VARCHAR AS run_id,
					NULL::VARCHAR AS solver,
					NULL::VARCHAR AS jitter,
					NULL::INTEGER AS size,
					NULL::BIGINT AS seed,
					NULL::VARCHAR AS result,
					NULL::VARCHAR AS "error",
					NULL::BIGINT AS steps,
					NULL::INTEGER AS food_eaten,
					NULL::INTEGER AS snake_len,
					NULL::BIGINT AS plans,
					NULL::BIGINT AS plan_nanos,
					NULL::INTEGER AS dead_ends,
					NULL::INTEGER AS overrides,
					NULL::BIGINT AS finished_at_ms
			) WHERE 1=0`)
		if err != nil {
			return fmt.Errorf("create empty runs view: %w", err)
		}
		return nil
	}

	quoted := make([]string, len(files))
	for i, f := range files {
		quoted[i] = "'" + escapeSQLString(f) + "'"
	}
	sqlText := `CREATE OR REPLACE VIEW runs AS
		SELECT * FROM read_parquet([` + strings.Join(quoted, ",") + `], union_by_name=true)`
	if _, err := db.Exec(sqlText); err != nil {
		return fmt.Errorf("create runs view: %w", err)
	}
	return nil
}

func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Files is the number of parquet files behind the view.
func (d *DB) Files() int { return d.files }

func (d *DB) Close() error { return d.db.Close() }

const summaryQuery = `
SELECT
	solver,
	jitter,
	size::INTEGER,
	COUNT(*)::BIGINT,
	(COUNT(*) FILTER (WHERE result = 'finished'))::BIGINT,
	(COUNT(*) FILTER (WHERE result = 'killed'))::BIGINT,
	MIN(steps)::BIGINT,
	AVG(steps)::DOUBLE,
	MAX(steps)::BIGINT,
	COALESCE(AVG(plan_nanos::DOUBLE / NULLIF(plans, 0) / (size * size)), 0)::DOUBLE,
	COALESCE(SUM(dead_ends), 0)::BIGINT,
	COALESCE(SUM(overrides), 0)::BIGINT
FROM runs
GROUP BY solver, jitter, size
ORDER BY solver, jitter, size`

func (d *DB) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := d.db.QueryContext(ctx, summaryQuery)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Solver, &s.Jitter, &s.Size,
			&s.Runs, &s.Finished, &s.Killed,
			&s.MinSteps, &s.AvgSteps, &s.MaxSteps,
			&s.PlanNsPerCell, &s.DeadEnds, &s.Overrides); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return out, nil
}

// Write prints sums as an aligned table.
func Write(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "solver\tjitter\tsize\truns\tfinished\tkilled\tmin\tavg\tmax\tns/cell\tdead ends\toverrides\t")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t%d\t%.2f\t%d\t%d\t\n",
			s.Solver, s.Jitter, s.Size, s.Runs, s.Finished, s.Killed,
			s.MinSteps, s.AvgSteps, s.MaxSteps, s.PlanNsPerCell, s.DeadEnds, s.Overrides)
	}
	return tw.Flush()
}
