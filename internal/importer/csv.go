package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"
)

// ParseCSV reads a header row followed by data rows
func ParseCSV(r io.Reader, sourceFile string) ([]model.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &analytics.ValidationError{Field: "file", Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, &analytics.ValidationError{Field: "file", Err: fmt.Errorf("failed to read CSV header: %w", err)}
	}

	parser, err := newRowParser(header, sourceFile, false)
	if err != nil {
		return nil, err
	}

	records := make([]model.SalesRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &analytics.ValidationError{Field: "file", Err: fmt.Errorf("malformed CSV: %w", err)}
		}
		if isBlank(row) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rec, err := parser.parse(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
