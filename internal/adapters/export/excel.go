// internal/adapters/export/excel.go
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tealeg/xlsx/v3"

	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// ExcelSink writes report tables as <name>.xlsx workbooks inside a directory.
type ExcelSink struct {
	dir    string
	logger *slog.Logger
}

// Statically assert that *ExcelSink implements the TableExporter port.
var _ ports.TableExporter = (*ExcelSink)(nil)

// NewExcelSink creates an Excel export sink rooted at dir.
func NewExcelSink(dir string, logger *slog.Logger) *ExcelSink {
	return &ExcelSink{
		dir:    dir,
		logger: logger.With(slog.String("sink", "excel")),
	}
}

// ExportTable writes a single worksheet with a bold header row.
func (s *ExcelSink) ExportTable(ctx context.Context, name string, headers []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(name)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, row := range rows {
		dataRow := sheet.AddRow()
		for _, value := range row {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	path := filepath.Join(s.dir, name+".xlsx")
	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.InfoContext(ctx, "exported excel",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	return nil
}
