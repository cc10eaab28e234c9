// Package registry implements the table catalog: the owning collection of
// loaded and created tables, plus the current-table designation that
// unqualified operations act on.
package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/leengari/rowdb/internal/domain/errors"
	"github.com/leengari/rowdb/internal/domain/reference"
	"github.com/leengari/rowdb/internal/domain/table"
	"github.com/leengari/rowdb/internal/storage"
)

// Registry owns the set of tables keyed by name. The current table is
// tracked by name, not by pointer, so replacing a same-named entry can
// never leave the designation dangling.
type Registry struct {
	mu      sync.RWMutex
	tables  map[string]*table.Table
	current string
	ext     string // fallback extension for loads
}

// New creates an empty registry. ext is the fallback file extension tried
// on load; empty means the storage default.
func New(ext string) *Registry {
	return &Registry{
		tables: make(map[string]*table.Table),
		ext:    ext,
	}
}

// Create builds a new empty table with the given columns, stores it, and
// makes it current. Fails with TableExistsError when the name is taken,
// leaving the existing table untouched.
func (r *Registry) Create(name string, columns []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[name]; ok {
		return errors.NewTableExists(name)
	}

	r.tables[name] = table.NewWithColumns(name, columns)
	r.current = name

	slog.Debug("table created", "table", name, "columns", len(columns))
	return nil
}

// Load reads a table file (with extension fallback), installs the table
// under its persisted name (replacing any same-named entry), and makes it
// current. Returns the table name and the path actually read.
func (r *Registry) Load(path string) (string, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, actual, err := storage.Load(path, r.ext)
	if err != nil {
		return "", "", err
	}

	r.tables[t.Name()] = t
	r.current = t.Name()

	return t.Name(), actual, nil
}

// Save serializes the current table to path, overwriting any existing
// file. Fails with NoTableSelectedError when no table is current.
func (r *Registry) Save(path string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[r.current]
	if !ok {
		return errors.NewNoTableSelected("save")
	}

	return storage.Save(t, path)
}

// Select repoints the current-table designation. Fails with
// TableNotFoundError, leaving the designation unchanged.
func (r *Registry) Select(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[name]; !ok {
		return errors.NewTableNotFound(name)
	}

	r.current = name
	return nil
}

// EditCell resolves a cell reference against the current table, expanding
// rows as needed, and writes the value. Returns the resolved coordinates.
func (r *Registry) EditCell(token, value string) (reference.Ref, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[r.current]
	if !ok {
		return reference.Ref{}, errors.NewNoTableSelected("edit")
	}

	ref, err := reference.Apply(t, token, value)
	if err != nil {
		return reference.Ref{}, err
	}

	slog.Debug("cell updated", "table", t.Name(), "column", ref.Column, "row", ref.Row)
	return ref, nil
}

// AddRow appends a row of values to the current table.
func (r *Registry) AddRow(values []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[r.current]
	if !ok {
		return errors.NewNoTableSelected("add-row")
	}

	return t.AddRow(values)
}

// List returns all table names, sorted. The order is stable for the life
// of the process.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the current table, or nil when none is selected.
func (r *Registry) Current() *table.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tables[r.current]
}

// CurrentName returns the current table's name, or "" when none is
// selected.
func (r *Registry) CurrentName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.tables[r.current]; !ok {
		return ""
	}
	return r.current
}

// Get looks up a table by name.
func (r *Registry) Get(name string) (*table.Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	return t, ok
}
