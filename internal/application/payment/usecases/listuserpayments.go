package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/payment"
	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/logger"
)

type ListUserPaymentsQuery struct {
	UserID  uint
	Page    int
	PerPage int
}

type ListUserPaymentsResult struct {
	Payments []*payment.Payment
	Total    int64
	Page     int
	PerPage  int
}

type ListUserPaymentsUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewListUserPaymentsUseCase(paymentRepo payment.Repository, logger logger.Interface) *ListUserPaymentsUseCase {
	return &ListUserPaymentsUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *ListUserPaymentsUseCase) Execute(ctx context.Context, query ListUserPaymentsQuery) (*ListUserPaymentsResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PerPage < 1 {
		query.PerPage = constants.DefaultPageSize
	}
	if query.PerPage > constants.MaxPageSize {
		query.PerPage = constants.MaxPageSize
	}

	payments, total, err := uc.paymentRepo.ListByUser(ctx, payment.ListFilter{
		UserID:  query.UserID,
		Page:    query.Page,
		PerPage: query.PerPage,
	})
	if err != nil {
		uc.logger.Errorw("failed to list payments", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListUserPaymentsResult{
		Payments: payments,
		Total:    total,
		Page:     query.Page,
		PerPage:  query.PerPage,
	}, nil
}
