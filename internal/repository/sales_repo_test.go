package repository

import (
	"context"
	"testing"
	"time"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB builds statements without a server; pgx opens connections lazily
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=sales dbname=sales sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestApplyFilterTranslatesSpec(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	spec := analytics.FilterSpec{
		ProductIn:        []string{"Laptop", "Tablet"},
		ProductSetActive: true,
		RegionEquals:     "North",
		DateRange:        analytics.DateRange{Start: &start, End: &end},
	}

	var records []model.SalesRecord
	stmt := applyFilter(dryRunDB(t), spec).Find(&records).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `FROM "sales_records"`)
	assert.Contains(t, sql, "product IN ($1,$2)")
	assert.Contains(t, sql, "region = $3")
	assert.Contains(t, sql, "date >= $4")
	assert.Contains(t, sql, "date <= $5")
	assert.Equal(t, []interface{}{"Laptop", "Tablet", "North", start, end}, stmt.Vars)
}

func TestApplyFilterEmptySpecHasNoConditions(t *testing.T) {
	var records []model.SalesRecord
	stmt := applyFilter(dryRunDB(t), analytics.FilterSpec{}).Find(&records).Statement

	assert.NotContains(t, stmt.SQL.String(), "WHERE")
	assert.Empty(t, stmt.Vars)
}

func TestApplyFilterProductEquals(t *testing.T) {
	var records []model.SalesRecord
	stmt := applyFilter(dryRunDB(t), analytics.FilterSpec{ProductEquals: "Laptop"}).Find(&records).Statement

	assert.Contains(t, stmt.SQL.String(), "product = $1")
	assert.Equal(t, []interface{}{"Laptop"}, stmt.Vars)
}

func TestFetchEmptyProductSetSkipsQuery(t *testing.T) {
	repo := NewSalesRepository(nil)

	records, err := repo.Fetch(context.Background(), analytics.FilterSpec{ProductSetActive: true})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
