// Package artifact writes and reads the gzip-compressed JSON lookup files
// consumed by the recipe application.
package artifact

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

// Default file names inside the output directory
const (
	CategoryFile = "ingredients_json.gz"
	MetaFile     = "ingredients_meta.gz"
)

// Artifact kinds recorded in the run report
const (
	KindCategories = "categories"
	KindMeta       = "meta"
)

// ErrNotFound is returned when an artifact file does not exist
var ErrNotFound = errors.New("artifact not found")

// WriteCategories writes the name → ordinal mapping. Keys are sorted, so the
// same mapping always produces the same bytes.
func WriteCategories(path string, entries map[string]category.ID) (model.Artifact, error) {
	return writeGzipJSON(path, KindCategories, entries, len(entries))
}

// WriteMeta writes the name → metadata mapping
func WriteMeta(path string, entries map[string]model.Metadata) (model.Artifact, error) {
	return writeGzipJSON(path, KindMeta, entries, len(entries))
}

// ReadCategories loads a categories artifact
func ReadCategories(path string) (map[string]category.ID, error) {
	out := make(map[string]category.ID)
	if err := readGzipJSON(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadMeta loads a metadata artifact
func ReadMeta(path string) (map[string]model.Metadata, error) {
	out := make(map[string]model.Metadata)
	if err := readGzipJSON(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeGzipJSON writes to a temporary file beside path and renames it into
// place, so readers never observe a partial artifact.
func writeGzipJSON(path, kind string, v any, entries int) (model.Artifact, error) {
	payload, err := encode(v)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("encode %s: %w", kind, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.Artifact{}, fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return model.Artifact{}, fmt.Errorf("create temp file: %w", err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	gz := gzip.NewWriter(tmp)
	if _, err := gz.Write(payload); err != nil {
		cleanup()
		return model.Artifact{}, fmt.Errorf("write %s: %w", kind, err)
	}
	if err := gz.Close(); err != nil {
		cleanup()
		return model.Artifact{}, fmt.Errorf("flush %s: %w", kind, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return model.Artifact{}, fmt.Errorf("sync %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return model.Artifact{}, fmt.Errorf("close %s: %w", kind, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return model.Artifact{}, fmt.Errorf("chmod %s: %w", kind, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return model.Artifact{}, fmt.Errorf("rename %s: %w", kind, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("stat %s: %w", kind, err)
	}

	return model.Artifact{Kind: kind, Path: path, Entries: entries, Bytes: info.Size()}, nil
}

func readGzipJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("open gzip stream: %w", err)
	}
	defer func() { _ = gz.Close() }()

	data, err := io.ReadAll(gz)
	if err != nil {
		return fmt.Errorf("decompress artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode artifact: %w", err)
	}
	return nil
}
