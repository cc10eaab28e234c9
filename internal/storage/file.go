package storage

import (
	"log/slog"
	"os"

	"github.com/leengari/rowdb/internal/domain/errors"
	"github.com/leengari/rowdb/internal/domain/table"
)

// DefaultExtension is the fallback suffix tried when a load path does not
// exist as given ("Open Data Table").
const DefaultExtension = ".odt"

// Load reads and parses a table file. The literal path is tried first; if
// it does not exist, the path with ext appended is tried. Fails with
// FileNotFoundError naming both attempted paths when neither exists.
// Returns the table and the path actually read.
func Load(path, ext string) (*table.Table, string, error) {
	if ext == "" {
		ext = DefaultExtension
	}

	actual := path
	if !fileExists(actual) {
		fallback := path + ext
		if !fileExists(fallback) {
			return nil, "", errors.NewFileNotFound(path, fallback)
		}
		actual = fallback
	}

	data, err := os.ReadFile(actual)
	if err != nil {
		return nil, "", errors.NewIOError("read", actual, err)
	}

	t, err := Unmarshal(data)
	if err != nil {
		if ferr, ok := err.(*errors.FormatError); ok {
			ferr.Path = actual
		}
		return nil, "", err
	}

	slog.Info("Table loaded",
		slog.String("table", t.Name()),
		slog.String("path", actual),
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", t.ColumnCount()),
	)

	return t, actual, nil
}

// Save serializes a table and writes it to path using a temp file and an
// atomic rename, so a write failure never leaves a partially-written file
// at the destination.
func Save(t *table.Table, path string) error {
	data := Marshal(t)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.NewIOError("write", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewIOError("rename", path, err)
	}

	slog.Info("Table saved",
		slog.String("table", t.Name()),
		slog.String("path", path),
		slog.Int("rows", t.RowCount()),
	)

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
