package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"subcommerce/internal/domain/payment"
	vo "subcommerce/internal/domain/payment/valueobjects"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	model := &models.PaymentModel{
		ID:                    p.ID(),
		SubscriptionID:        p.SubscriptionID(),
		UserID:                p.UserID(),
		TransactionID:         p.TransactionID(),
		StripeSessionID:       p.StripeSessionID(),
		StripePaymentIntentID: p.StripePaymentIntentID(),
		StripeInvoiceID:       p.StripeInvoiceID(),
		Amount:                p.Amount().AmountMinor(),
		Currency:              p.Amount().Currency(),
		Status:                p.Status().String(),
		PaidAt:                p.PaidAt(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}

	if len(p.Metadata()) > 0 {
		model.Metadata = datatypes.JSONMap(p.Metadata())
	}

	return model
}

func PaymentToDomain(m *models.PaymentModel) (*payment.Payment, error) {
	if m == nil {
		return nil, nil
	}

	status := vo.PaymentStatus(m.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", m.Status)
	}

	return payment.ReconstructPaymentWithParams(payment.PaymentReconstructParams{
		ID:                    m.ID,
		SubscriptionID:        m.SubscriptionID,
		UserID:                m.UserID,
		TransactionID:         m.TransactionID,
		StripeSessionID:       m.StripeSessionID,
		StripePaymentIntentID: m.StripePaymentIntentID,
		StripeInvoiceID:       m.StripeInvoiceID,
		Amount:                money.NewMoney(m.Amount, m.Currency),
		Status:                status,
		Metadata:              map[string]interface{}(m.Metadata),
		PaidAt:                m.PaidAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}), nil
}

func PaymentsToDomain(ms []*models.PaymentModel) ([]*payment.Payment, error) {
	out := make([]*payment.Payment, 0, len(ms))
	for _, m := range ms {
		p, err := PaymentToDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
