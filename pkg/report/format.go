package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Writer renders a Summary.
type Writer func(io.Writer, Summary) error

var formats = map[string]Writer{
	"text": Text,
	"json": JSON,
	"yaml": YAML,
	"csv":  CSV,
	"html": HTML,
}

// Lookup returns the writer for a format name (text, json, yaml, csv, html).
func Lookup(name string) (Writer, error) {
	w, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("report: unknown format %q", name)
	}
	return w, nil
}

// WriteFile renders s to path, creating parent directories.
func WriteFile(path string, w Writer, s Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := w(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}
