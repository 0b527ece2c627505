package models

import (
	"time"

	"subcommerce/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:255"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20;default:user"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
