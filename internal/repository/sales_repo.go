package repository

import (
	"context"
	"fmt"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"

	"gorm.io/gorm"
)

const insertBatchSize = 500

type SalesRepository interface {
	Fetch(ctx context.Context, spec analytics.FilterSpec) ([]model.SalesRecord, error)
	CreateBatch(ctx context.Context, records []model.SalesRecord) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type salesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

// Fetch runs one SELECT for the records matching spec and returns them fully materialized,
// so callers aggregate over a point-in-time snapshot rather than a live cursor.
func (r *salesRepository) Fetch(ctx context.Context, spec analytics.FilterSpec) ([]model.SalesRecord, error) {
	records := make([]model.SalesRecord, 0)
	if spec.ProductSetActive && len(spec.ProductIn) == 0 {
		return records, nil
	}

	if err := applyFilter(GetDB(ctx, r.db), spec).
		Order("date ASC").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sales records: %w", err)
	}
	return records, nil
}

// applyFilter translates a FilterSpec into equality, IN and range conditions
func applyFilter(db *gorm.DB, spec analytics.FilterSpec) *gorm.DB {
	db = db.Model(&model.SalesRecord{})
	if spec.ProductEquals != "" {
		db = db.Where("product = ?", spec.ProductEquals)
	}
	if spec.ProductSetActive {
		db = db.Where("product IN ?", spec.ProductIn)
	}
	if spec.RegionEquals != "" {
		db = db.Where("region = ?", spec.RegionEquals)
	}
	if spec.DateRange.Start != nil {
		db = db.Where("date >= ?", *spec.DateRange.Start)
	}
	if spec.DateRange.End != nil {
		db = db.Where("date <= ?", *spec.DateRange.End)
	}
	return db
}

func (r *salesRepository) CreateBatch(ctx context.Context, records []model.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).CreateInBatches(records, insertBatchSize).Error
}

func (r *salesRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.SalesRecord{})
	return res.RowsAffected, res.Error
}

func (r *salesRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.SalesRecord{}).Count(&total).Error
	return total, err
}
