package analytics

import (
	"sort"
	"strings"

	"salesanalytics/internal/model"

	"github.com/samber/lo"
)

// Strategy selects how filtered records are grouped
type Strategy string

const (
	StrategyByRegion     Strategy = "region"
	StrategyByProduct    Strategy = "product"
	StrategyByTimeBucket Strategy = "period"
	StrategyRawFilter    Strategy = "raw"
)

// ParseStrategy maps a groupBy query value to a Strategy
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyByRegion, StrategyByProduct, StrategyByTimeBucket, StrategyRawFilter:
		return st, nil
	}
	return "", invalid("groupBy", ErrUnknownGrouping)
}

// Grouping is a strategy plus its parameters
type Grouping struct {
	Strategy Strategy
	Period   Period
}

// Metric names used in Row.Metrics
const (
	MetricTotalRevenue      = "totalRevenue"
	MetricTotalQuantitySold = "totalQuantitySold"
	MetricTotalSales        = "totalSales"
)

// Row is one group of an aggregation
type Row struct {
	GroupKey string             `json:"groupKey"`
	Metrics  map[string]float64 `json:"metrics"`
}

// Result carries the grouped rows and, for the raw strategy only, the filtered records
type Result struct {
	Rows    []Row               `json:"rows"`
	Records []model.SalesRecord `json:"records,omitempty"`
}

// Matches reports whether r satisfies every active constraint of s
func (s FilterSpec) Matches(r model.SalesRecord) bool {
	if s.ProductEquals != "" && r.Product != s.ProductEquals {
		return false
	}
	if s.ProductSetActive && !lo.Contains(s.ProductIn, r.Product) {
		return false
	}
	if s.RegionEquals != "" && r.Region != s.RegionEquals {
		return false
	}
	return s.DateRange.Contains(r.Date)
}

// Filter returns the records matching spec in their original order
func Filter(records []model.SalesRecord, spec FilterSpec) []model.SalesRecord {
	out := make([]model.SalesRecord, 0, len(records))
	for _, r := range records {
		if spec.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate filters records by spec and groups them by g.
// Only the time-bucket strategy treats an empty filtered set as an error.
func Aggregate(records []model.SalesRecord, spec FilterSpec, g Grouping) (Result, error) {
	filtered := Filter(records, spec)

	switch g.Strategy {
	case StrategyByRegion:
		return Result{Rows: regionRows(foldRegions(filtered))}, nil
	case StrategyByProduct:
		products := foldProducts(filtered)
		rows := make([]Row, 0, len(products))
		for _, p := range products {
			rows = append(rows, Row{
				GroupKey: p.Product,
				Metrics:  map[string]float64{MetricTotalQuantitySold: float64(p.TotalQuantitySold)},
			})
		}
		return Result{Rows: rows}, nil
	case StrategyByTimeBucket:
		points, err := foldBuckets(filtered, g.Period)
		if err != nil {
			return Result{}, err
		}
		rows := make([]Row, 0, len(points))
		for _, p := range points {
			rows = append(rows, Row{
				GroupKey: p.Period,
				Metrics: map[string]float64{
					MetricTotalRevenue: p.TotalRevenue,
					MetricTotalSales:   float64(p.TotalSales),
				},
			})
		}
		return Result{Rows: rows}, nil
	case StrategyRawFilter:
		return Result{Rows: regionRows(foldRegions(filtered)), Records: filtered}, nil
	}
	return Result{}, invalid("groupBy", ErrUnknownGrouping)
}

// RevenueByRegion sums total per region, one row per region present, ordered by region name
func RevenueByRegion(records []model.SalesRecord, spec FilterSpec) []model.RegionRevenue {
	return foldRegions(Filter(records, spec))
}

// QuantityByProduct sums quantity per product, largest first, ties by product name
func QuantityByProduct(records []model.SalesRecord, spec FilterSpec) []model.ProductQuantity {
	return foldProducts(Filter(records, spec))
}

// Trends buckets records by period in chronological order.
// It returns ErrNoDataInRange when no record survives the filter.
func Trends(records []model.SalesRecord, spec FilterSpec, period Period) ([]model.TrendPoint, error) {
	return foldBuckets(Filter(records, spec), period)
}

// FilterWithSummary filters once and derives the region summary from that same slice
func FilterWithSummary(records []model.SalesRecord, spec FilterSpec) model.FilteredSales {
	filtered := Filter(records, spec)
	return model.FilteredSales{
		Records:         filtered,
		RevenueByRegion: foldRegions(filtered),
	}
}

// Summarize returns headline totals of the filtered set; an empty set yields zeros
func Summarize(records []model.SalesRecord, spec FilterSpec) model.SalesSummary {
	var summary model.SalesSummary
	for _, r := range Filter(records, spec) {
		summary.RecordCount++
		summary.TotalQuantitySold += r.Quantity
		summary.TotalRevenue += r.Total
	}
	return summary
}

func foldRegions(filtered []model.SalesRecord) []model.RegionRevenue {
	sums := make(map[string]float64)
	for _, r := range filtered {
		sums[r.Region] += r.Total
	}

	regions := lo.Keys(sums)
	sort.Strings(regions)

	out := make([]model.RegionRevenue, 0, len(regions))
	for _, region := range regions {
		out = append(out, model.RegionRevenue{Region: region, TotalRevenue: sums[region]})
	}
	return out
}

func regionRows(regions []model.RegionRevenue) []Row {
	return lo.Map(regions, func(r model.RegionRevenue, _ int) Row {
		return Row{GroupKey: r.Region, Metrics: map[string]float64{MetricTotalRevenue: r.TotalRevenue}}
	})
}

func foldProducts(filtered []model.SalesRecord) []model.ProductQuantity {
	sums := make(map[string]int)
	for _, r := range filtered {
		sums[r.Product] += r.Quantity
	}

	out := make([]model.ProductQuantity, 0, len(sums))
	for product, qty := range sums {
		out = append(out, model.ProductQuantity{Product: product, TotalQuantitySold: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantitySold != out[j].TotalQuantitySold {
			return out[i].TotalQuantitySold > out[j].TotalQuantitySold
		}
		return out[i].Product < out[j].Product
	})
	return out
}

func foldBuckets(filtered []model.SalesRecord, period Period) ([]model.TrendPoint, error) {
	if len(filtered) == 0 {
		return nil, ErrNoDataInRange
	}

	type acc struct {
		revenue float64
		sales   int
	}
	sums := make(map[bucketKey]*acc)
	for _, r := range filtered {
		key := bucketOf(r.Date, period)
		a, ok := sums[key]
		if !ok {
			a = &acc{}
			sums[key] = a
		}
		a.revenue += r.Total
		a.sales += r.Quantity
	}

	keys := lo.Keys(sums)
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	out := make([]model.TrendPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.TrendPoint{
			Period:       k.label(period),
			Year:         k.year,
			Month:        k.month,
			Week:         k.week,
			Day:          k.day,
			TotalRevenue: sums[k].revenue,
			TotalSales:   sums[k].sales,
		})
	}
	return out, nil
}
