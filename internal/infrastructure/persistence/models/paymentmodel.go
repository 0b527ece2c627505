package models

import (
	"time"

	"gorm.io/datatypes"

	"subcommerce/internal/shared/constants"
)

// PaymentModel is a single charge attempt against a subscription.
type PaymentModel struct {
	ID                    uint              `gorm:"primaryKey"`
	SubscriptionID        uint              `gorm:"not null;index"`
	UserID                uint              `gorm:"not null;index:idx_payments_user_status,priority:1"`
	TransactionID         string            `gorm:"uniqueIndex;size:64;not null"`
	StripeSessionID       *string           `gorm:"uniqueIndex;size:255"`
	StripePaymentIntentID *string           `gorm:"index;size:255"`
	StripeInvoiceID       *string           `gorm:"uniqueIndex;size:255"`
	Amount                int64             `gorm:"not null"`
	Currency              string            `gorm:"size:3;not null;default:usd"`
	Status                string            `gorm:"size:20;not null;default:unpaid;index:idx_payments_user_status,priority:2"`
	Metadata              datatypes.JSONMap `gorm:"type:json"`
	PaidAt                *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Subscription *SubscriptionModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
	User         *UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
