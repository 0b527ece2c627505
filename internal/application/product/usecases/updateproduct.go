package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/product"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// UpdateProductCommand carries a partial update; nil fields are left as is.
type UpdateProductCommand struct {
	ProductID    uint
	Title        *string
	Description  *string
	PriceMinor   *int64
	DurationDays *int
	Status       *string
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Product not found")
	}

	title, description, price, duration := p.Title(), p.Description(), p.PriceMinor(), p.DurationDays()
	if cmd.Title != nil {
		title = *cmd.Title
	}
	if cmd.Description != nil {
		description = cmd.Description
	}
	if cmd.PriceMinor != nil {
		price = *cmd.PriceMinor
	}
	if cmd.DurationDays != nil {
		duration = *cmd.DurationDays
	}

	if err := p.UpdateDetails(title, description, price, duration); err != nil {
		return nil, toValidationError(err)
	}
	if cmd.Status != nil {
		if err := p.SetStatus(product.Status(*cmd.Status)); err != nil {
			return nil, toValidationError(err)
		}
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "product_id", p.ID(), "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.logger.Infow("product updated", "product_id", p.ID())
	return p, nil
}
