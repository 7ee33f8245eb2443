package artifact

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

func gunzip(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	out, err := io.ReadAll(gz)
	require.NoError(t, err)
	return string(out)
}

func TestWriteCategories_SortedCompact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", CategoryFile)
	entries := map[string]category.ID{
		"olive oil":  category.Oil,
		"cheddar":    category.Cheese,
		"apple":      category.Produce,
		"mac & jack": category.Cheese,
	}

	art, err := WriteCategories(path, entries)
	require.NoError(t, err)
	assert.Equal(t, KindCategories, art.Kind)
	assert.Equal(t, 4, art.Entries)
	assert.Positive(t, art.Bytes)

	assert.Equal(t, `{"apple":0,"cheddar":5,"mac & jack":5,"olive oil":13}`, gunzip(t, path))

	got, err := ReadCategories(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestWriteCategories_ByteIdentical(t *testing.T) {
	dir := t.TempDir()
	entries := map[string]category.ID{}
	for i, name := range []string{"rice", "cola", "miso", "gruyère", "basil", "flour"} {
		entries[name] = category.ID(i)
	}

	a := filepath.Join(dir, "a.gz")
	b := filepath.Join(dir, "b.gz")
	_, err := WriteCategories(a, entries)
	require.NoError(t, err)
	_, err = WriteCategories(b, entries)
	require.NoError(t, err)

	ra, _ := os.ReadFile(a)
	rb, _ := os.ReadFile(b)
	assert.Equal(t, ra, rb)
}

func TestWriteMeta_SparseFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), MetaFile)
	kcal := int64(0)
	fat := 3.5
	entries := map[string]model.Metadata{
		"tofu": {Category: uint8(category.Legume), Vegan: true, Kcal: &kcal, Fat: &fat},
	}

	_, err := WriteMeta(path, entries)
	require.NoError(t, err)
	assert.Equal(t, `{"tofu":{"cat":9,"vegan":true,"kcal":0,"fat":3.5}}`, gunzip(t, path))

	got, err := ReadMeta(path)
	require.NoError(t, err)
	require.Contains(t, got, "tofu")
	assert.Equal(t, int64(0), *got["tofu"].Kcal)
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteCategories(filepath.Join(dir, CategoryFile), map[string]category.ID{"rice": category.Grain})
	require.NoError(t, err)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, CategoryFile, files[0].Name())
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadCategories(filepath.Join(dir, "missing.gz"))
	assert.True(t, errors.Is(err, ErrNotFound))

	plain := filepath.Join(dir, "plain.gz")
	require.NoError(t, os.WriteFile(plain, []byte("{}"), 0o644))
	_, err = ReadCategories(plain)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
