package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ppiankov/pantrymap/internal/model"
)

func sampleReport() *model.Report {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return &model.Report{
		RunID:      "4f9e0c1a-2b3c-4d5e-8f70-112233445566",
		Source:     "en.openfoodfacts.org.products.csv",
		StartedAt:  start,
		FinishedAt: start.Add(95 * time.Second),
		Workers:    4,
		Rows:       1234567,
		Counts:     model.Counts{Classified: 600000, Unclassified: 400000, Filtered: 234567},
		Distribution: []model.CategoryCount{
			{Ordinal: 0, Category: "produce", Count: 120000},
			{Ordinal: 23, Category: "pantry", Count: 80000},
		},
		DecidedBy:       map[string]int{"name": 500000, "tags": 100000},
		FilterReasons:   map[string]int{"digit_run": 10, "denylist:pizza": 20},
		TopUnclassified: []model.NameCount{{Name: "blorptang", Count: 42}},
		Entries:         200000,
		Artifacts:       []model.Artifact{{Kind: "categories", Path: "out/ingredients_json.gz", Entries: 200000, Bytes: 3 << 20}},
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "Build Complete")
	assert.Contains(t, out, "Rows:         1,234,567")
	assert.Contains(t, out, "Classified:   600,000")
	assert.Regexp(t, `produce:\s+120,000`, out)
	assert.Contains(t, out, "Duration:     1m35s")
	assert.Contains(t, out, "3.0 MB")
	assert.Less(t, strings.Index(out, "produce"), strings.Index(out, "pantry"))
	assert.NotContains(t, out, "primary:", "zero sources are omitted")
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	in := sampleReport()

	require.NoError(t, WriteJSON(path, in))
	out, err := ReadJSON(path)
	require.NoError(t, err)

	assert.Equal(t, in.RunID, out.RunID)
	assert.Equal(t, in.TopUnclassified, out.TopUnclassified)
	assert.Equal(t, in.Duration(), out.Duration())
}

func TestReadJSON_Missing(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xlsx")
	require.NoError(t, WriteXLSX(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetSummary, SheetDistribution, SheetUnclassified, SheetFilters}, f.GetSheetList())

	v, err := f.GetCellValue(SheetDistribution, "B3")
	require.NoError(t, err)
	assert.Equal(t, "pantry", v)

	v, err = f.GetCellValue(SheetFilters, "A2")
	require.NoError(t, err)
	assert.Equal(t, "denylist:pizza", v, "reasons are sorted")

	v, err = f.GetCellValue(SheetUnclassified, "B2")
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}
