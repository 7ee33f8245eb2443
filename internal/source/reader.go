// Package source reads the bulk product export: a tab-separated file with a
// header row, optionally gzip-compressed and in a non-UTF-8 encoding.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/net/html/charset"

	"github.com/ppiankov/pantrymap/internal/model"
)

// MaxLineBytes bounds a single row. Export rows with long ingredient lists
// run to several hundred kilobytes.
const MaxLineBytes = 16 << 20

// Column names read from the export header
const (
	ColName       = "product_name"
	ColPrimary    = "main_category_en"
	ColTags       = "categories_tags"
	ColLabels     = "labels_en"
	ColAllergens  = "allergens_en"
	ColEnergyKcal = "energy-kcal_100g"
	ColProtein    = "proteins_100g"
	ColCarbs      = "carbohydrates_100g"
	ColFat        = "fat_100g"
	ColFiber      = "fiber_100g"
	ColSodium     = "sodium_100g"
)

// Columns lists every column the reader extracts
func Columns() []string {
	return []string{
		ColName, ColPrimary, ColTags, ColLabels, ColAllergens,
		ColEnergyKcal, ColProtein, ColCarbs, ColFat, ColFiber, ColSodium,
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Reader yields one record per data row. It is not safe for concurrent use.
type Reader struct {
	scanner *bufio.Scanner
	closers []io.Closer

	index   map[string]int
	missing []string
	line    int
}

// Open opens the export at path. encoding is a WHATWG label such as
// "utf-8" or "windows-1252"; empty means UTF-8.
func Open(path, encoding string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}

	r, err := NewReader(file, encoding)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	r.closers = append(r.closers, file)
	return r, nil
}

// NewReader wraps an already open stream. Gzip input is detected from its
// magic bytes. The header row is consumed before NewReader returns.
func NewReader(in io.Reader, encoding string) (*Reader, error) {
	r := &Reader{}

	buffered := bufio.NewReaderSize(in, 64<<10)
	magic, _ := buffered.Peek(len(gzipMagic))

	var stream io.Reader = buffered
	if bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		r.closers = append(r.closers, gz)
		stream = gz
	}

	if !isUTF8(encoding) {
		decoded, err := charset.NewReaderLabel(encoding, stream)
		if err != nil {
			r.closeAll()
			return nil, fmt.Errorf("decode %q: %w", encoding, err)
		}
		stream = decoded
	}

	r.scanner = bufio.NewScanner(stream)
	r.scanner.Buffer(make([]byte, 0, 256<<10), MaxLineBytes)

	if err := r.readHeader(); err != nil {
		r.closeAll()
		return nil, err
	}
	return r, nil
}

func isUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

func (r *Reader) readHeader() error {
	r.index = make(map[string]int)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		// empty source: no rows, every column missing
		r.missing = Columns()
		return nil
	}
	r.line++

	header := bytes.TrimPrefix(r.scanner.Bytes(), utf8BOM)
	for i, col := range strings.Split(strings.TrimRight(string(header), "\r"), "\t") {
		col = strings.TrimSpace(col)
		if _, dup := r.index[col]; !dup {
			r.index[col] = i
		}
	}
	for _, col := range Columns() {
		if _, ok := r.index[col]; !ok {
			r.missing = append(r.missing, col)
		}
	}
	return nil
}

// Next returns the next record, or io.EOF after the last row. Absent
// columns and short rows yield empty fields.
func (r *Reader) Next() (model.Record, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return model.Record{}, fmt.Errorf("line %d exceeds %d bytes: %w", r.line+1, MaxLineBytes, err)
			}
			return model.Record{}, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		return model.Record{}, io.EOF
	}
	r.line++

	fields := strings.Split(strings.TrimRight(r.scanner.Text(), "\r"), "\t")
	get := func(col string) string {
		i, ok := r.index[col]
		if !ok || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	return model.Record{
		Name:      get(ColName),
		Primary:   get(ColPrimary),
		Tags:      get(ColTags),
		Labels:    get(ColLabels),
		Allergens: get(ColAllergens),
		Nutrition: model.NutritionFields{
			EnergyKcal: get(ColEnergyKcal),
			Protein:    get(ColProtein),
			Carbs:      get(ColCarbs),
			Fat:        get(ColFat),
			Fiber:      get(ColFiber),
			Sodium:     get(ColSodium),
		},
	}, nil
}

// Line returns the number of physical lines consumed, header included
func (r *Reader) Line() int {
	return r.line
}

// Missing lists extracted columns absent from the header
func (r *Reader) Missing() []string {
	return append([]string(nil), r.missing...)
}

// Close releases the underlying file and decompressor
func (r *Reader) Close() error {
	return r.closeAll()
}

func (r *Reader) closeAll() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
