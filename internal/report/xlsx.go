package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ppiankov/pantrymap/internal/model"
)

// Sheet names of the XLSX summary
const (
	SheetSummary      = "Summary"
	SheetDistribution = "Distribution"
	SheetUnclassified = "Unclassified"
	SheetFilters      = "Filters"
)

// WriteXLSX writes the run report as a workbook for curators: one sheet of
// totals, one per breakdown.
func WriteXLSX(path string, r *model.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	// the default sheet becomes the summary
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	summary := [][]any{
		{"Run", r.RunID},
		{"Source", r.Source},
		{"Started", r.StartedAt.Format(time.RFC3339)},
		{"Finished", r.FinishedAt.Format(time.RFC3339)},
		{"Workers", r.Workers},
		{"Rows", r.Rows},
		{"Classified", r.Counts.Classified},
		{"Unclassified", r.Counts.Unclassified},
		{"Filtered", r.Counts.Filtered},
		{"Entries", r.Entries},
		{"Metadata entries", r.MetaEntries},
	}
	if err := writeTable(f, SheetSummary, headerStyle, []string{"Field", "Value"}, summary); err != nil {
		return err
	}

	dist := make([][]any, 0, len(r.Distribution))
	for _, cc := range r.Distribution {
		dist = append(dist, []any{cc.Ordinal, cc.Category, cc.Count})
	}
	if err := addTable(f, SheetDistribution, headerStyle, []string{"Ordinal", "Category", "Entries"}, dist); err != nil {
		return err
	}

	top := make([][]any, 0, len(r.TopUnclassified))
	for _, nc := range r.TopUnclassified {
		top = append(top, []any{nc.Name, nc.Count})
	}
	if err := addTable(f, SheetUnclassified, headerStyle, []string{"Name", "Rows"}, top); err != nil {
		return err
	}

	reasons := make([]string, 0, len(r.FilterReasons))
	for reason := range r.FilterReasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	filters := make([][]any, 0, len(reasons))
	for _, reason := range reasons {
		filters = append(filters, []any{reason, r.FilterReasons[reason]})
	}
	if err := addTable(f, SheetFilters, headerStyle, []string{"Reason", "Rows"}, filters); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addTable(f *excelize.File, sheet string, style int, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	return writeTable(f, sheet, style, headers, rows)
}

func writeTable(f *excelize.File, sheet string, style int, headers []string, rows [][]any) error {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, r+2, err)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 22); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}
