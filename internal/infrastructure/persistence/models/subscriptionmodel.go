package models

import (
	"time"

	"subcommerce/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
type SubscriptionModel struct {
	ID                   uint    `gorm:"primarykey"`
	UserID               uint    `gorm:"not null;index:idx_subscriptions_user_status,priority:1"`
	ProductID            uint    `gorm:"not null;index"`
	Status               string  `gorm:"not null;size:20;default:pending;index:idx_subscriptions_user_status,priority:2;index:idx_subscriptions_status_expires,priority:1"`
	StartsAt             *time.Time
	ExpiresAt            *time.Time `gorm:"index:idx_subscriptions_status_expires,priority:2"`
	StripeSubscriptionID *string    `gorm:"uniqueIndex;size:255"`
	DeletedAt            *time.Time `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
