package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const recordsFile = "analyses.csv"

var header = []string{"side", "goroutines", "start_time", "duration", "searches", "cells", "threats", "captures"}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir if needed. Records are appended to baseDir/analyses.csv.
func NewWriter(baseDir string) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Path() string {
	return filepath.Join(w.baseDir, recordsFile)
}

func (w *Writer) WriteAnalysisRecords(records []AnalysisMetric) error {
	path := w.Path()
	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open analysis records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if fresh {
		err = writer.Write(header)
		if err != nil {
			return fmt.Errorf("failed to write analysis records header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Side),
			strconv.Itoa(record.Goroutines),
			record.StartTime.UTC().Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Searches),
			strconv.Itoa(record.Cells),
			strconv.Itoa(record.Threats),
			strconv.Itoa(record.Captures),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write analysis record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush analysis records: %w", err)
	}
	return nil
}
