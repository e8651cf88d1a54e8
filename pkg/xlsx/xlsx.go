// Package xlsx loads a raw survey workbook into a table. The first row of
// the chosen sheet is the header (verbatim question text); every later row
// is one respondent. Blank cells become nulls.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// Load reads the workbook at path. If sheet is empty, the first sheet that
// has a header row and at least one data row is used.
func Load(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := sheetRows(f, sheet)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	data := rows[1:]

	t := table.New(len(data))
	for col, name := range header {
		if name == "" {
			continue
		}
		cells := make([]table.Cell, len(data))
		for row, record := range data {
			cells[row] = cellOf(record, col)
		}
		if err := t.Add(name, cells); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	return t, nil
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	if sheet != "" {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) < 1 {
			return nil, fmt.Errorf("sheet %q is empty", sheet)
		}
		return rows, nil
	}
	for _, name := range f.GetSheetList() {
		if rows, err := f.GetRows(name); err == nil && len(rows) >= 2 {
			return rows, nil
		}
	}
	return nil, fmt.Errorf("no sheet with header and data rows found")
}

// cellOf returns the cell at col in a possibly short row. Spreadsheet rows
// are ragged: trailing empty cells are not materialized.
func cellOf(record []string, col int) table.Cell {
	if col >= len(record) {
		return table.Null()
	}
	v := strings.TrimSpace(record[col])
	if v == "" {
		return table.Null()
	}
	return table.String(record[col])
}
