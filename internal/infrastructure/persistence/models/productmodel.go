package models

import (
	"time"

	"subcommerce/internal/shared/constants"
)

// ProductModel is the catalog row. Price is stored in minor units.
type ProductModel struct {
	ID           uint       `gorm:"primarykey"`
	Title        string     `gorm:"not null;size:255;index:idx_products_title"`
	Description  *string    `gorm:"type:text"`
	Price        int64      `gorm:"not null"`
	Status       string     `gorm:"not null;size:20;default:active;index:idx_products_status"`
	DurationDays int        `gorm:"not null;default:30"`
	DeletedAt    *time.Time `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
