// Package export writes coverage analyses to Excel workbooks.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Sheet names in the analysis workbook
const (
	SummarySheet      = "Summary"
	RequirementsSheet = "Requirements"
)

const (
	headerColor  = "4472C4"
	foundColor   = "C6EFCE"
	missingColor = "FFC7CE"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// WriteAnalysisWorkbook saves a Summary and a Requirements sheet for an
// analysis to path. A missing .xlsx extension is appended.
func WriteAnalysisWorkbook(path string, jd *types.ParsedJD, analysis *types.Analysis) error {
	f, err := BuildAnalysisWorkbook(jd, analysis)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	if err := f.SaveAs(filepath.Clean(path)); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// BuildAnalysisWorkbook renders the workbook in memory. The caller owns the
// returned file and must close it.
func BuildAnalysisWorkbook(jd *types.ParsedJD, analysis *types.Analysis) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(RequirementsSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create requirements sheet: %w", err)
	}

	if err := writeSummarySheet(f, jd, analysis); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeRequirementsSheet(f, analysis); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create requirements sheet: %w", err)
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, jd *types.ParsedJD, analysis *types.Analysis) error {
	sheet := SummarySheet
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Résumé Coverage Report"); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", titleStyle); err != nil {
		return err
	}

	rows := [][2]interface{}{
		{"Job Title:", orDash(jd.Title)},
		{"Company:", orDash(jd.Company)},
		{"Seniority:", orDash(jd.Seniority)},
		{"Coverage (%):", analysis.CoveragePct},
		{"Must-haves found:", fmt.Sprintf("%d / %d", analysis.MustFound, analysis.MustTotal)},
		{"Nice-to-haves found:", fmt.Sprintf("%d / %d", analysis.NiceFound, analysis.NiceTotal)},
		{"Notes:", ranking.Summarize(analysis)},
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
	}

	for i, r := range rows {
		row := i + 3
		label := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(sheet, label, r[0]); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, label, label, labelStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeRequirementsSheet(f *excelize.File, analysis *types.Analysis) error {
	sheet := RequirementsSheet
	widths := map[string]float64{"A": 24, "B": 10, "C": 8, "D": 40, "E": 14}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}
	foundStyle, err := rowStyle(f, foundColor)
	if err != nil {
		return err
	}
	missingStyle, err := rowStyle(f, missingColor)
	if err != nil {
		return err
	}

	headers := []string{"Term", "Priority", "Found", "Bullet IDs", "Skills Section"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, r := range analysis.Results {
		row := i + 2
		values := []interface{}{
			r.Term,
			string(r.Priority),
			yesNo(r.Found),
			strings.Join(r.Locations.Bullets, ", "),
			yesNo(r.Locations.SkillsSection),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}

		style := missingStyle
		if r.Found {
			style = foundStyle
		}
		if err := f.SetCellStyle(sheet, cell, fmt.Sprintf("E%d", row), style); err != nil {
			return err
		}
	}

	if len(analysis.Results) > 0 {
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:E%d", len(analysis.Results)+1), []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func rowStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: thinBorder,
	})
}

func orDash(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
