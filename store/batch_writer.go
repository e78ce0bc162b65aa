package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

var ErrWriterClosed = errors.New("batch writer is closed")

// BatchWriter streams rows into a tmp file and publishes it on Finalize.
type BatchWriter struct {
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[RunRow]
	rows   int
}

func NewBatchWriter(outDir string) (*BatchWriter, error) {
	if outDir == "" {
		return nil, fmt.Errorf("new batch writer: output dir is required")
	}
	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := batchName()
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	return &BatchWriter{
		tmpPath: tmpPath,
		outPath: filepath.Join(outDir, name),
		file:    f,
		writer:  parquet.NewGenericWriter[RunRow](f, writerOptions()...),
	}, nil
}

func (b *BatchWriter) OutPath() string { return b.outPath }
func (b *BatchWriter) Rows() int       { return b.rows }

func (b *BatchWriter) Write(rows ...RunRow) error {
	if b.writer == nil {
		return ErrWriterClosed
	}
	if _, err := b.writer.Write(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	b.rows += len(rows)
	return nil
}

// Finalize closes the file and moves it into place. An empty batch is
// removed and reported with an empty path.
func (b *BatchWriter) Finalize() (string, error) {
	if b.writer == nil {
		return "", ErrWriterClosed
	}
	closeErr := b.writer.Close()
	b.writer = nil
	_ = b.file.Sync()
	fileErr := b.file.Close()

	if err := errors.Join(closeErr, fileErr); err != nil {
		_ = os.Remove(b.tmpPath)
		return "", fmt.Errorf("close parquet: %w", err)
	}
	if b.rows == 0 {
		_ = os.Remove(b.tmpPath)
		return "", nil
	}
	if err := os.Rename(b.tmpPath, b.outPath); err != nil {
		return "", fmt.Errorf("rename parquet: %w", err)
	}
	return b.outPath, nil
}
