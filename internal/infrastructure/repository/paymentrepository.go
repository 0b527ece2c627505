package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"subcommerce/internal/domain/payment"
	vo "subcommerce/internal/domain/payment/valueobjects"
	"subcommerce/internal/infrastructure/persistence/mappers"
	"subcommerce/internal/infrastructure/persistence/models"
	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/db"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	p.SetID(model.ID)
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":                   model.Status,
			"stripe_session_id":        model.StripeSessionID,
			"stripe_payment_intent_id": model.StripePaymentIntentID,
			"stripe_invoice_id":        model.StripeInvoiceID,
			"metadata":                 model.Metadata,
			"paid_at":                  model.PaidAt,
			"updated_at":               model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *PaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*payment.Payment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("stripe_session_id = ?", sessionID))
}

func (r *PaymentRepository) GetBySessionIDForUpdate(ctx context.Context, sessionID string) (*payment.Payment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForUpdate()).
		Where("stripe_session_id = ?", sessionID))
}

func (r *PaymentRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*payment.Payment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).
		Where("stripe_payment_intent_id = ?", paymentIntentID).
		Order("id DESC"))
}

func (r *PaymentRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*payment.Payment, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("stripe_invoice_id = ?", invoiceID))
}

func (r *PaymentRepository) first(query *gorm.DB) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC, id DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments by subscription_id: %w", err)
	}

	return mappers.PaymentsToDomain(paymentModels)
}

func (r *PaymentRepository) ListByUser(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, int64, error) {
	base := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("user_id = ?", filter.UserID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	page, perPage := filter.Page, filter.PerPage
	if page < 1 {
		page = constants.DefaultPage
	}
	if perPage < 1 {
		perPage = constants.DefaultPageSize
	}

	var paymentModels []*models.PaymentModel
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&paymentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments, err := mappers.PaymentsToDomain(paymentModels)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *PaymentRepository) SumPaidByUser(ctx context.Context, userID uint) (int64, error) {
	var sum int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status = ?", userID, vo.PaymentStatusPaid.String()).
		Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum paid payments: %w", err)
	}
	return sum, nil
}

func (r *PaymentRepository) CountUnpaidByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("user_id = ? AND status = ?", userID, vo.PaymentStatusUnpaid.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unpaid payments: %w", err)
	}
	return count, nil
}
