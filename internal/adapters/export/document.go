// internal/adapters/export/document.go
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// DocumentSink writes (title, body) report documents as plain text files.
// A PDF renderer consuming the same pair can replace it without touching the
// report aggregation.
type DocumentSink struct {
	dir    string
	logger *slog.Logger
}

// Statically assert that *DocumentSink implements the DocumentExporter port.
var _ ports.DocumentExporter = (*DocumentSink)(nil)

// NewDocumentSink creates a text document sink rooted at dir.
func NewDocumentSink(dir string, logger *slog.Logger) *DocumentSink {
	return &DocumentSink{
		dir:    dir,
		logger: logger.With(slog.String("sink", "document")),
	}
}

// ExportDocument writes the title, an underline, and the body.
func (s *DocumentSink) ExportDocument(ctx context.Context, title, body string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.dir, slugify(title)+".txt")
	content := title + "\n" + strings.Repeat("=", len(title)) + "\n\n" + body
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	s.logger.InfoContext(ctx, "exported document",
		slog.String("path", path),
		slog.Int("bytes", len(content)))

	return nil
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "_")
	return slug
}
