package analytics

import (
	"strings"
	"time"
)

// DateMode selects how a query treats a missing date bound
type DateMode int

const (
	// DateLenient leaves a missing bound open-ended
	DateLenient DateMode = iota
	// DateStrict requires both bounds
	DateStrict
)

const dateLayout = "2006-01-02"

// RawQuery is a query as received from a caller, before validation
type RawQuery struct {
	Product   string `form:"product" json:"product"`
	Category  string `form:"category" json:"category"`
	Region    string `form:"region" json:"region"`
	StartDate string `form:"startDate" json:"startDate"`
	EndDate   string `form:"endDate" json:"endDate"`
}

// DateRange is an inclusive range; a nil side is unbounded
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t lies within the inclusive bounds
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// FilterSpec is the validated form of a RawQuery.
// Empty string fields and an inactive product set impose no constraint.
type FilterSpec struct {
	ProductEquals string
	// ProductIn applies only when ProductSetActive is set; an active empty set matches nothing
	ProductIn        []string
	ProductSetActive bool
	RegionEquals     string
	DateRange        DateRange
}

// Normalizer turns raw queries into filter specs using an injected category table
type Normalizer struct {
	categories CategoryMap
}

func NewNormalizer(categories CategoryMap) *Normalizer {
	return &Normalizer{categories: categories}
}

// Normalize validates raw and builds its FilterSpec.
// Product takes precedence over category; an unknown category matches no records.
func (n *Normalizer) Normalize(raw RawQuery, mode DateMode) (FilterSpec, error) {
	var spec FilterSpec

	dates, err := parseDateRange(raw.StartDate, raw.EndDate, mode)
	if err != nil {
		return FilterSpec{}, err
	}
	spec.DateRange = dates

	product := strings.TrimSpace(raw.Product)
	category := strings.TrimSpace(raw.Category)
	switch {
	case product != "":
		spec.ProductEquals = product
	case category != "":
		products, _ := n.categories.Products(category)
		spec.ProductIn = products
		spec.ProductSetActive = true
	}

	spec.RegionEquals = strings.TrimSpace(raw.Region)
	return spec, nil
}

func parseDateRange(startStr, endStr string, mode DateMode) (DateRange, error) {
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	if mode == DateStrict && (startStr == "" || endStr == "") {
		return DateRange{}, invalid("", ErrMissingDateRange)
	}

	var r DateRange
	if startStr != "" {
		start, err := ParseDate(startStr)
		if err != nil {
			return DateRange{}, invalid("startDate", err)
		}
		r.Start = &start
	}
	if endStr != "" {
		end, err := ParseDate(endStr)
		if err != nil {
			return DateRange{}, invalid("endDate", err)
		}
		r.End = &end
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{}, invalid("", ErrInvalidDateRange)
	}
	return r, nil
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp.
// The result is the calendar day as written, at midnight UTC; an RFC3339 offset
// selects the day but never moves it.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDateFormat
}

// Day truncates t to midnight UTC, the precision records are stored at
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
