package repository

import (
	"context"

	"salesanalytics/internal/model"

	"gorm.io/gorm"
)

type ImportRepository interface {
	Log(ctx context.Context, entry *model.ImportLog) error
	List(ctx context.Context, offset, limit int) ([]model.ImportLog, int64, error)
}

type importRepository struct {
	db *gorm.DB
}

func NewImportRepository(db *gorm.DB) ImportRepository {
	return &importRepository{db: db}
}

func (r *importRepository) Log(ctx context.Context, entry *model.ImportLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *importRepository) List(ctx context.Context, offset, limit int) ([]model.ImportLog, int64, error) {
	var logs []model.ImportLog
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.ImportLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
