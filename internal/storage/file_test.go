package storage

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/rowdb/internal/domain/errors"
)

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.odt")

	original := sampleTable(t)
	assert.NilError(t, Save(original, path))

	loaded, actual, err := Load(path, "")
	assert.NilError(t, err)
	assert.Equal(t, path, actual)
	assert.Assert(t, original.Equal(loaded))
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.odt")

	assert.NilError(t, Save(sampleTable(t), path))

	_, err := os.Stat(path + ".tmp")
	assert.Assert(t, os.IsNotExist(err))
}

func TestSaveFailureLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	// Parent directory does not exist, so the temp write fails.
	path := filepath.Join(dir, "missing", "contacts.odt")

	err := Save(sampleTable(t), path)

	var ioErr *errors.IOError
	assert.Assert(t, stderrors.As(err, &ioErr))

	_, statErr := os.Stat(path)
	assert.Assert(t, os.IsNotExist(statErr))
}

func TestLoadExtensionFallback(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "contacts")

	assert.NilError(t, Save(sampleTable(t), base+".odt"))

	// The literal path does not exist; the .odt fallback does.
	loaded, actual, err := Load(base, "")
	assert.NilError(t, err)
	assert.Equal(t, base+".odt", actual)
	assert.Equal(t, "contacts", loaded.Name())
}

func TestLoadFileNotFoundNamesBothPaths(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "foo")

	_, _, err := Load(base, "")

	var nfErr *errors.FileNotFoundError
	assert.Assert(t, stderrors.As(err, &nfErr))
	assert.Equal(t, base, nfErr.Path)
	assert.Equal(t, base+".odt", nfErr.Fallback)
}

func TestLoadCustomExtension(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "contacts")

	assert.NilError(t, Save(sampleTable(t), base+".tbl"))

	_, actual, err := Load(base, ".tbl")
	assert.NilError(t, err)
	assert.Equal(t, base+".tbl", actual)
}

func TestLoadMalformedFileReportsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.odt")
	assert.NilError(t, os.WriteFile(path, []byte("not a table\n"), 0644))

	_, _, err := Load(path, "")

	var ferr *errors.FormatError
	assert.Assert(t, stderrors.As(err, &ferr))
	assert.Equal(t, path, ferr.Path)
}
