// internal/adapters/export/csv.go
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// CSVSink writes report tables as <name>.csv files inside a directory.
type CSVSink struct {
	dir    string
	logger *slog.Logger
}

// Statically assert that *CSVSink implements the TableExporter port.
var _ ports.TableExporter = (*CSVSink)(nil)

// NewCSVSink creates a CSV export sink rooted at dir.
func NewCSVSink(dir string, logger *slog.Logger) *CSVSink {
	return &CSVSink{
		dir:    dir,
		logger: logger.With(slog.String("sink", "csv")),
	}
}

// ExportTable writes headers followed by rows. The file is closed on every
// exit path and a flush error surfaces rather than truncating silently.
func (s *CSVSink) ExportTable(ctx context.Context, name string, headers []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.logger.InfoContext(ctx, "exported csv",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	return nil
}
