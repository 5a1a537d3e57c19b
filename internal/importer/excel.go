package importer

import (
	"fmt"
	"io"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"

	"github.com/xuri/excelize/v2"
)

// ParseExcel reads the first worksheet of an XLSX workbook; row 1 is the header
func ParseExcel(r io.Reader, sourceFile string) ([]model.SalesRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &analytics.ValidationError{Field: "file", Err: fmt.Errorf("failed to open workbook: %w", err)}
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &analytics.ValidationError{Field: "file", Err: ErrEmptyFile}
	}

	// raw values keep dates as serial numbers instead of locale-formatted strings
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &analytics.ValidationError{Field: "file", Err: fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)}
	}
	if len(rows) == 0 {
		return nil, &analytics.ValidationError{Field: "file", Err: ErrEmptyFile}
	}

	parser, err := newRowParser(rows[0], sourceFile, true)
	if err != nil {
		return nil, err
	}

	records := make([]model.SalesRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec, err := parser.parse(row, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
