// Command report summarizes benchmark parquet batches per solver, jitter
// policy and board size.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arduano/snake-solver/config"
	"github.com/arduano/snake-solver/logging"
	"github.com/arduano/snake-solver/report"
)

func main() {
	roots := flag.String("roots", config.EnvOrDefault("REPORT_ROOTS", "data/bench"), "Comma separated directories or parquet files")
	logFormat := flag.String("log-format", config.EnvOrDefault("LOG_FORMAT", "text"), "Log format: text, json or pretty")
	logLevel := flag.String("log-level", config.EnvOrDefault("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	logger, err := logging.New(os.Stderr, *logFormat, level)
	if err != nil {
		log.Fatalf("Invalid -log-format: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := report.Open(config.SplitList(*roots)...)
	if err != nil {
		log.Fatalf("open runs: %v", err)
	}
	defer db.Close()
	logger.Info("loaded runs", "files", db.Files())

	sums, err := db.Summaries(ctx)
	if err != nil {
		log.Fatalf("summaries: %v", err)
	}
	if err := report.Write(os.Stdout, sums); err != nil {
		log.Fatalf("write report: %v", err)
	}
}
