// internal/core/ports/export.go
package ports

import "context"

// TableExporter consumes uniform-keyed rows for tabular export (CSV, Excel).
// Header order matches row column order; the core is agnostic to rendering.
type TableExporter interface {
	ExportTable(ctx context.Context, name string, headers []string, rows [][]string) error
}

// DocumentExporter consumes a (title, body) pair for document export.
type DocumentExporter interface {
	ExportDocument(ctx context.Context, title, body string) error
}
