package mappers

import (
	"fmt"

	"subcommerce/internal/domain/subscription"
	vo "subcommerce/internal/domain/subscription/valueobjects"
	"subcommerce/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:                   s.ID(),
		UserID:               s.UserID(),
		ProductID:            s.ProductID(),
		Status:               s.Status().String(),
		StartsAt:             s.StartsAt(),
		ExpiresAt:            s.ExpiresAt(),
		StripeSubscriptionID: s.StripeSubscriptionID(),
		DeletedAt:            s.DeletedAt(),
		CreatedAt:            s.CreatedAt(),
		UpdatedAt:            s.UpdatedAt(),
	}
}

func SubscriptionToDomain(m *models.SubscriptionModel) (*subscription.Subscription, error) {
	if m == nil {
		return nil, nil
	}
	s, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:                   m.ID,
		UserID:               m.UserID,
		ProductID:            m.ProductID,
		Status:               vo.SubscriptionStatus(m.Status),
		StartsAt:             m.StartsAt,
		ExpiresAt:            m.ExpiresAt,
		StripeSubscriptionID: m.StripeSubscriptionID,
		DeletedAt:            m.DeletedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to map subscription %d: %w", m.ID, err)
	}
	return s, nil
}

func SubscriptionsToDomain(ms []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	out := make([]*subscription.Subscription, 0, len(ms))
	for _, m := range ms {
		s, err := SubscriptionToDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
