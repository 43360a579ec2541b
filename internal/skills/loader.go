package skills

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Stats describes how a source was read
type Stats struct {
	Rows    int // data rows read
	Skipped int // rows that were malformed or had an empty skill
}

// LoadFile loads a dictionary from a .csv or .xlsx file
func LoadFile(path string) (*Dictionary, Stats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, Stats{}, &LoadError{Source: path, Message: "failed to open dictionary", Cause: err}
		}
		defer func() { _ = f.Close() }()
		d, stats, err := LoadCSV(f)
		if err != nil {
			var loadErr *LoadError
			if errors.As(err, &loadErr) {
				loadErr.Source = path
			}
			return nil, stats, err
		}
		return d, stats, nil
	}
}

// LoadCSV reads "skill,aliases,type" rows. Columns are located by header name
// so their order is free; aliases and type are optional.
func LoadCSV(r io.Reader) (*Dictionary, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records [][]string
	var parseErrors int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				parseErrors++
				continue
			}
			return nil, Stats{}, &LoadError{Source: "csv", Message: "failed to read dictionary", Cause: err}
		}
		records = append(records, record)
	}

	d, stats, err := fromRecords("csv", records)
	stats.Skipped += parseErrors
	return d, stats, err
}

// LoadXLSX reads the sheet named "skills", or the first sheet, of a workbook
func LoadXLSX(path string) (*Dictionary, Stats, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Stats{}, &LoadError{Source: path, Message: "failed to open workbook", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return loadWorkbook(path, f)
}

// LoadXLSXReader is LoadXLSX for an in-memory workbook
func LoadXLSXReader(r io.Reader) (*Dictionary, Stats, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Stats{}, &LoadError{Source: "xlsx", Message: "failed to open workbook", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return loadWorkbook("xlsx", f)
}

func loadWorkbook(source string, f *excelize.File) (*Dictionary, Stats, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, Stats{}, &LoadError{Source: source, Message: "workbook has no sheets"}
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, "skills") {
			sheet = name
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, Stats{}, &LoadError{Source: source, Message: fmt.Sprintf("failed to read sheet %q", sheet), Cause: err}
	}
	return fromRecords(source, rows)
}

// fromRecords treats the first record as the header row
func fromRecords(source string, records [][]string) (*Dictionary, Stats, error) {
	if len(records) == 0 {
		return nil, Stats{}, &LoadError{Source: source, Message: "dictionary is empty"}
	}

	skillCol, aliasCol, typeCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "skill":
			skillCol = i
		case "aliases":
			aliasCol = i
		case "type":
			typeCol = i
		}
	}
	if skillCol < 0 {
		return nil, Stats{}, &LoadError{Source: source, Message: `missing "skill" column`}
	}

	var stats Stats
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		stats.Rows++
		row := Row{
			Skill:   cell(record, skillCol),
			Aliases: cell(record, aliasCol),
			Type:    cell(record, typeCol),
		}
		if strings.TrimSpace(row.Skill) == "" {
			stats.Skipped++
			continue
		}
		rows = append(rows, row)
	}

	d := NewDictionary(rows)
	if d.Len() == 0 {
		return nil, stats, &LoadError{Source: source, Message: "no skill rows could be parsed"}
	}
	return d, stats, nil
}

func cell(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}
