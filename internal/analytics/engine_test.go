package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"salesanalytics/internal/model"
	"salesanalytics/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(product, region string, date string, qty int, total float64) model.SalesRecord {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.SalesRecord{Product: product, Region: region, Date: d, Quantity: qty, Total: total}
}

func mustSpec(t *testing.T, raw RawQuery, mode DateMode) FilterSpec {
	t.Helper()
	spec, err := NewNormalizer(DefaultCategoryMap()).Normalize(raw, mode)
	require.NoError(t, err)
	return spec
}

func TestRevenueByRegionSeedData(t *testing.T) {
	got := RevenueByRegion(seed.Records(), FilterSpec{})

	assert.Equal(t, []model.RegionRevenue{
		{Region: "East", TotalRevenue: 25400},
		{Region: "North", TotalRevenue: 68000},
		{Region: "South", TotalRevenue: 91500},
		{Region: "West", TotalRevenue: 58000},
	}, got)
}

func TestRevenueByRegionEmpty(t *testing.T) {
	got := RevenueByRegion(nil, FilterSpec{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuantityByProductOrdering(t *testing.T) {
	records := []model.SalesRecord{
		rec("C", "North", "2024-01-01", 5, 50),
		rec("B", "North", "2024-01-01", 10, 100),
		rec("A", "South", "2024-01-02", 4, 40),
		rec("A", "South", "2024-01-03", 6, 60),
	}

	got := QuantityByProduct(records, FilterSpec{})

	assert.Equal(t, []model.ProductQuantity{
		{Product: "A", TotalQuantitySold: 10},
		{Product: "B", TotalQuantitySold: 10},
		{Product: "C", TotalQuantitySold: 5},
	}, got)
}

func TestTrendsDailySplitsDays(t *testing.T) {
	records := []model.SalesRecord{
		rec("Smartphone", "South", "2024-02-29", 120, 84000),
		rec("Laptop", "North", "2024-01-31", 50, 50000),
	}

	got, err := Trends(records, FilterSpec{}, PeriodDaily)
	require.NoError(t, err)

	assert.Equal(t, []model.TrendPoint{
		{Period: "2024-01-31", Year: 2024, Month: 1, Day: 31, TotalRevenue: 50000, TotalSales: 50},
		{Period: "2024-02-29", Year: 2024, Month: 2, Day: 29, TotalRevenue: 84000, TotalSales: 120},
	}, got)
}

func TestTrendsMonthlyDefaultMergesMonth(t *testing.T) {
	records := []model.SalesRecord{
		rec("Laptop", "North", "2024-01-05", 2, 2000),
		rec("Tablet", "West", "2024-01-31", 3, 1500),
	}

	got, err := Trends(records, FilterSpec{}, ParsePeriod(""))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-01", got[0].Period)
	assert.Equal(t, 3500.0, got[0].TotalRevenue)
	assert.Equal(t, 5, got[0].TotalSales)
}

func TestTrendsWeeklyUsesISOYear(t *testing.T) {
	records := []model.SalesRecord{
		rec("Laptop", "North", "2024-12-30", 1, 10), // ISO 2025-W01
		rec("Laptop", "North", "2025-01-01", 1, 10), // ISO 2025-W01
		rec("Laptop", "North", "2024-12-28", 1, 10), // ISO 2024-W52
	}

	got, err := Trends(records, FilterSpec{}, PeriodWeekly)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "2024-W52", got[0].Period)
	assert.Equal(t, "2025-W01", got[1].Period)
	assert.Equal(t, 2, got[1].TotalSales)
	assert.Equal(t, 0, got[1].Month)
}

func TestTrendsSortedChronologically(t *testing.T) {
	got, err := Trends(seed.Records(), FilterSpec{}, PeriodMonthly)
	require.NoError(t, err)

	require.Len(t, got, 8)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Period, got[i].Period)
	}
}

func TestTrendsNoDataInRange(t *testing.T) {
	spec := mustSpec(t, RawQuery{StartDate: "2030-01-01", EndDate: "2030-12-31"}, DateStrict)

	got, err := Trends(seed.Records(), spec, PeriodDaily)
	require.ErrorIs(t, err, ErrNoDataInRange)
	assert.Nil(t, got)
}

func TestFilterUnknownCategoryMatchesNothing(t *testing.T) {
	spec := mustSpec(t, RawQuery{Category: "furniture"}, DateLenient)

	assert.Empty(t, Filter(seed.Records(), spec))
}

func TestFilterProductBeatsCategory(t *testing.T) {
	spec := mustSpec(t, RawQuery{Product: "Laptop", Category: "wearables"}, DateLenient)

	got := Filter(seed.Records(), spec)
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].Product)
}

func TestFilterCategoryAndRegion(t *testing.T) {
	spec := mustSpec(t, RawQuery{Category: "electronics", Region: "North"}, DateLenient)

	got := Filter(seed.Records(), spec)
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].Product)
}

func TestFilterInclusiveDateBounds(t *testing.T) {
	spec := mustSpec(t, RawQuery{StartDate: "2024-01-31", EndDate: "2024-03-31"}, DateStrict)

	got := Filter(seed.Records(), spec)
	assert.Equal(t, []string{"Laptop", "Smartphone", "Headphones"}, productsOf(got))
}

func TestFilterOpenEndedRange(t *testing.T) {
	spec := mustSpec(t, RawQuery{StartDate: "2024-07-01"}, DateLenient)

	got := Filter(seed.Records(), spec)
	assert.Equal(t, []string{"Mouse", "Smartwatch"}, productsOf(got))
}

func TestFilterWithSummaryAgrees(t *testing.T) {
	spec := mustSpec(t, RawQuery{Category: "accessories"}, DateLenient)

	got := FilterWithSummary(seed.Records(), spec)

	var listTotal, summaryTotal float64
	for _, r := range got.Records {
		listTotal += r.Total
	}
	for _, r := range got.RevenueByRegion {
		summaryTotal += r.TotalRevenue
	}
	assert.Equal(t, listTotal, summaryTotal)
	assert.Equal(t, []string{"Headphones", "Smartwatch"}, productsOf(got.Records))
	assert.Equal(t, []model.RegionRevenue{
		{Region: "East", TotalRevenue: 20000},
		{Region: "West", TotalRevenue: 18000},
	}, got.RevenueByRegion)
}

func TestSummarize(t *testing.T) {
	got := Summarize(seed.Records(), FilterSpec{})
	assert.Equal(t, model.SalesSummary{RecordCount: 8, TotalQuantitySold: 930, TotalRevenue: 242900}, got)

	empty := Summarize(seed.Records(), mustSpec(t, RawQuery{Region: "Nowhere"}, DateLenient))
	assert.Equal(t, model.SalesSummary{}, empty)
}

func TestAggregateStrategies(t *testing.T) {
	records := seed.Records()

	byRegion, err := Aggregate(records, FilterSpec{}, Grouping{Strategy: StrategyByRegion})
	require.NoError(t, err)
	require.Len(t, byRegion.Rows, 4)
	assert.Equal(t, "East", byRegion.Rows[0].GroupKey)
	assert.Equal(t, 25400.0, byRegion.Rows[0].Metrics[MetricTotalRevenue])
	assert.Nil(t, byRegion.Records)

	byProduct, err := Aggregate(records, FilterSpec{}, Grouping{Strategy: StrategyByProduct})
	require.NoError(t, err)
	assert.Equal(t, "Headphones", byProduct.Rows[0].GroupKey)
	assert.Equal(t, 200.0, byProduct.Rows[0].Metrics[MetricTotalQuantitySold])
	_, hasRevenue := byProduct.Rows[0].Metrics[MetricTotalRevenue]
	assert.False(t, hasRevenue)

	byPeriod, err := Aggregate(records, FilterSpec{}, Grouping{Strategy: StrategyByTimeBucket, Period: PeriodMonthly})
	require.NoError(t, err)
	assert.Equal(t, "2024-01", byPeriod.Rows[0].GroupKey)
	assert.Equal(t, 50.0, byPeriod.Rows[0].Metrics[MetricTotalSales])

	raw, err := Aggregate(records, mustSpec(t, RawQuery{Region: "West"}, DateLenient), Grouping{Strategy: StrategyRawFilter})
	require.NoError(t, err)
	assert.Len(t, raw.Records, 2)
	require.Len(t, raw.Rows, 1)
	assert.Equal(t, 58000.0, raw.Rows[0].Metrics[MetricTotalRevenue])
}

func TestAggregateEmptyInput(t *testing.T) {
	for _, s := range []Strategy{StrategyByRegion, StrategyByProduct, StrategyRawFilter} {
		res, err := Aggregate(nil, FilterSpec{}, Grouping{Strategy: s})
		require.NoError(t, err, s)
		assert.Empty(t, res.Rows, s)
	}

	_, err := Aggregate(nil, FilterSpec{}, Grouping{Strategy: StrategyByTimeBucket})
	assert.ErrorIs(t, err, ErrNoDataInRange)

	_, err = Aggregate(nil, FilterSpec{}, Grouping{Strategy: "pivot"})
	assert.ErrorIs(t, err, ErrUnknownGrouping)
}

func TestAggregateDeterministic(t *testing.T) {
	records := seed.Records()
	records = append(records, rec("Laptop", "North", "2024-01-15", 3, 3000), rec("Mouse", "West", "2024-07-02", 180, 5400))

	for _, g := range []Grouping{
		{Strategy: StrategyByRegion},
		{Strategy: StrategyByProduct},
		{Strategy: StrategyByTimeBucket, Period: PeriodWeekly},
		{Strategy: StrategyRawFilter},
	} {
		first, err := Aggregate(records, FilterSpec{}, g)
		require.NoError(t, err)
		want, err := json.Marshal(first)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			again, err := Aggregate(records, FilterSpec{}, g)
			require.NoError(t, err)
			got, err := json.Marshal(again)
			require.NoError(t, err)
			require.Equal(t, string(want), string(got), g.Strategy)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Product ")
	require.NoError(t, err)
	assert.Equal(t, StrategyByProduct, s)

	_, err = ParseStrategy("")
	assert.True(t, IsValidation(err))
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodDaily, ParsePeriod("daily"))
	assert.Equal(t, PeriodWeekly, ParsePeriod("WEEKLY"))
	assert.Equal(t, PeriodMonthly, ParsePeriod("quarterly"))
	assert.Equal(t, PeriodMonthly, ParsePeriod(""))
}

func TestDayTruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2024, time.March, 1, 5, 30, 0, 0, loc) // 2024-02-29 22:30 UTC

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), Day(in))
}

func productsOf(records []model.SalesRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Product)
	}
	return out
}
