package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"subcommerce/internal/domain/subscription"
	vo "subcommerce/internal/domain/subscription/valueobjects"
	"subcommerce/internal/infrastructure/persistence/mappers"
	"subcommerce/internal/infrastructure/persistence/models"
	"subcommerce/internal/shared/db"
	"subcommerce/internal/shared/logger"
)

type SubscriptionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "user_id", sub.UserID(), "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	sub.SetID(model.ID)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Scopes(db.NotDeleted()).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":                 model.Status,
			"starts_at":              model.StartsAt,
			"expires_at":             model.ExpiresAt,
			"stripe_subscription_id": model.StripeSubscriptionID,
			"deleted_at":             model.DeletedAt,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "subscription_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *SubscriptionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()).Where("id = ?", id))
}

func (r *SubscriptionRepository) GetByStripeSubscriptionID(ctx context.Context, remoteID string) (*subscription.Subscription, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("stripe_subscription_id = ?", remoteID))
}

func (r *SubscriptionRepository) GetByStripeSubscriptionIDForUpdate(ctx context.Context, remoteID string) (*subscription.Subscription, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForUpdate()).
		Where("stripe_subscription_id = ?", remoteID))
}

func (r *SubscriptionRepository) first(query *gorm.DB) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := query.Scopes(db.NotDeleted()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Scopes(db.NotDeleted())

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}

	var subscriptionModels []*models.SubscriptionModel
	if err := query.Order("created_at DESC, id DESC").Find(&subscriptionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return mappers.SubscriptionsToDomain(subscriptionModels)
}

func (r *SubscriptionRepository) HasActiveForProduct(ctx context.Context, userID, productID uint, now time.Time) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Scopes(db.NotDeleted()).
		Where("user_id = ? AND product_id = ? AND status = ? AND expires_at > ?",
			userID, productID, vo.StatusActive.String(), now).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check active subscription: %w", err)
	}
	return count > 0, nil
}

// ExpireDue runs as one UPDATE so each row is locked only for the statement.
func (r *SubscriptionRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Scopes(db.NotDeleted()).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", vo.StatusActive.String(), now).
		Updates(map[string]interface{}{
			"status":     vo.StatusExpired.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SubscriptionRepository) CountByUser(ctx context.Context, userID uint) (total, active, expired int64, err error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err = db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Scopes(db.NotDeleted()).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	for _, row := range rows {
		total += row.Count
		switch vo.SubscriptionStatus(row.Status) {
		case vo.StatusActive:
			active = row.Count
		case vo.StatusExpired:
			expired = row.Count
		}
	}
	return total, active, expired, nil
}
