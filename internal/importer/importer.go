// Package importer extracts sales records from uploaded CSV and Excel files.
package importer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .csv or .xlsx")
	ErrMissingColumn     = errors.New("required column is missing")
	ErrEmptyFile         = errors.New("file contains no header row")
	ErrNoDataRows        = errors.New("file contains no data rows")
)

const (
	colDate     = "date"
	colProduct  = "product"
	colCategory = "category"
	colRegion   = "region"
	colAmount   = "amount"
	colQuantity = "quantity"
	colTotal    = "total"
)

var requiredColumns = []string{colDate, colProduct, colCategory, colRegion, colAmount, colQuantity}

// keeps every quantity representable as int on all platforms
var maxQuantity = decimal.NewFromInt(math.MaxInt32)

// extra layouts seen in spreadsheet exports, tried after YYYY-MM-DD and RFC3339
var dateLayouts = []string{"1/2/2006", "01/02/2006", "1/2/06", "2006/01/02", "2006-01-02 15:04:05"}

// FormatFromName picks the parser from a file name extension
func FormatFromName(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return model.ImportFormatCSV, nil
	case ".xlsx", ".xlsm":
		return model.ImportFormatXLSX, nil
	}
	return "", &analytics.ValidationError{Field: "file", Err: ErrUnsupportedFormat}
}

// Parse reads every data row of r. Every returned record is tagged with sourceFile.
// Any malformed row fails the whole file so imports stay all-or-nothing.
func Parse(r io.Reader, format, sourceFile string) ([]model.SalesRecord, error) {
	switch format {
	case model.ImportFormatCSV:
		return ParseCSV(r, sourceFile)
	case model.ImportFormatXLSX:
		return ParseExcel(r, sourceFile)
	}
	return nil, &analytics.ValidationError{Field: "file", Err: ErrUnsupportedFormat}
}

// rowParser converts string cells to records once the header has been indexed
type rowParser struct {
	index       map[string]int
	sourceFile  string
	serialDates bool
}

func newRowParser(header []string, sourceFile string, serialDates bool) (*rowParser, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup && key != "" {
			index[key] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &analytics.ValidationError{Field: "column " + col, Err: ErrMissingColumn}
		}
	}
	return &rowParser{index: index, sourceFile: sourceFile, serialDates: serialDates}, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (p *rowParser) cell(row []string, col string) string {
	i, ok := p.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parse converts one data row; line is the 1-based line/row number used in errors
func (p *rowParser) parse(row []string, line int) (model.SalesRecord, error) {
	fail := func(col string, err error) error {
		return &analytics.ValidationError{Field: fmt.Sprintf("row %d: %s", line, col), Err: err}
	}

	rec := model.SalesRecord{SourceFile: p.sourceFile}

	date, err := p.parseDate(p.cell(row, colDate))
	if err != nil {
		return rec, fail(colDate, err)
	}
	rec.Date = date

	for _, f := range []struct {
		col string
		dst *string
	}{
		{colProduct, &rec.Product},
		{colCategory, &rec.Category},
		{colRegion, &rec.Region},
	} {
		v := p.cell(row, f.col)
		if v == "" {
			return rec, fail(f.col, errors.New("value is required"))
		}
		*f.dst = v
	}

	amount, err := parseNonNegative(p.cell(row, colAmount))
	if err != nil {
		return rec, fail(colAmount, err)
	}
	quantity, err := parseNonNegative(p.cell(row, colQuantity))
	if err != nil {
		return rec, fail(colQuantity, err)
	}
	if !quantity.IsInteger() {
		return rec, fail(colQuantity, errors.New("must be a whole number"))
	}
	if quantity.GreaterThan(maxQuantity) {
		return rec, fail(colQuantity, errors.New("out of range"))
	}

	total := amount.Mul(quantity)
	if raw := p.cell(row, colTotal); raw != "" {
		if total, err = parseNonNegative(raw); err != nil {
			return rec, fail(colTotal, err)
		}
	}

	rec.Amount = amount.InexactFloat64()
	rec.Quantity = int(quantity.IntPart())
	rec.Total = total.InexactFloat64()
	return rec, nil
}

func (p *rowParser) parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("value is required")
	}
	if t, err := analytics.ParseDate(s); err == nil {
		return analytics.Day(t), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return analytics.Day(t), nil
		}
	}
	if p.serialDates {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err == nil {
				return analytics.Day(t), nil
			}
		}
	}
	return time.Time{}, analytics.ErrInvalidDateFormat
}

func parseNonNegative(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("value is required")
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("must not be negative")
	}
	return d, nil
}
