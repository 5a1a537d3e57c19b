package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesRecord is one ingested sales transaction row.
// Records are written once by an import and never updated afterwards.
type SalesRecord struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Date       time.Time  `gorm:"not null;index" json:"date"`
	Product    string     `gorm:"type:varchar(255);not null;index" json:"product"`
	Category   string     `gorm:"type:varchar(255);not null" json:"category"`
	Region     string     `gorm:"type:varchar(255);not null;index" json:"region"`
	Amount     float64    `gorm:"not null" json:"amount"`   // unit price
	Quantity   int        `gorm:"not null" json:"quantity"` // units sold
	Total      float64    `gorm:"not null" json:"total"`    // amount * quantity as imported
	SourceFile string     `gorm:"type:text;not null" json:"sourceFile"`
	ImportID   *uuid.UUID `gorm:"type:uuid;index" json:"importId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// BeforeCreate assigns a client-side id so both postgres and sqlite stores behave the same.
func (r *SalesRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Import file formats
const (
	ImportFormatCSV  = "csv"
	ImportFormatXLSX = "xlsx"
)

// ImportLog records one uploaded file and how many rows it contributed
type ImportLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceFile   string    `gorm:"type:text;not null" json:"sourceFile"`
	OriginalName string    `gorm:"type:varchar(255)" json:"originalName"`
	Format       string    `gorm:"type:varchar(10);not null" json:"format"`
	RowCount     int       `gorm:"not null" json:"rowCount"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

func (l *ImportLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
