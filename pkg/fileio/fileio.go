// Package fileio decodes uploaded table files and encodes tables for
// download. Format is picked by file extension: .csv is read with
// encoding/csv, anything else goes through excelize as a workbook.
package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"jagung/pkg/tabular"
)

// Decode reads an uploaded file into a table. The first row becomes the
// column list; short data rows are padded.
func Decode(filename string, r io.Reader) (tabular.Table, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return decodeCSV(r)
	}
	return decodeXLSX(r)
}

func decodeCSV(r io.Reader) (tabular.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return tabular.Table{}, fmt.Errorf("read csv: %w", err)
	}
	return fromRecords(records), nil
}

func decodeXLSX(r io.Reader) (tabular.Table, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return tabular.Table{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return tabular.Table{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return fromRecords(rows), nil
}

func fromRecords(records [][]string) tabular.Table {
	if len(records) == 0 {
		return tabular.Table{}
	}
	head := records[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\uFEFF")
	}
	t := tabular.New(head...)
	for _, rec := range records[1:] {
		t.Append(rec)
	}
	return t
}

// EncodeCSV renders t as comma-separated UTF-8 with a header row.
func EncodeCSV(t tabular.Table) ([]byte, error) {
	var b strings.Builder
	cw := csv.NewWriter(&b)
	if err := cw.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// EncodeXLSX renders t as a single-sheet workbook.
func EncodeXLSX(t tabular.Table) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	sheet := x.GetSheetName(0)
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := x.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := x.SetSheetRow(sheet, addr, &cells); err != nil {
			return nil, err
		}
	}
	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
