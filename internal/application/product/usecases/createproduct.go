package usecases

import (
	"context"
	"errors"
	"fmt"

	"subcommerce/internal/domain/product"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type CreateProductCommand struct {
	Title        string
	Description  *string
	PriceMinor   int64
	DurationDays int
	Status       string
}

type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	p, err := product.NewProduct(cmd.Title, cmd.Description, cmd.PriceMinor, cmd.DurationDays)
	if err != nil {
		return nil, toValidationError(err)
	}
	if cmd.Status != "" {
		if err := p.SetStatus(product.Status(cmd.Status)); err != nil {
			return nil, toValidationError(err)
		}
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create product", "title", cmd.Title, "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.logger.Infow("product created", "product_id", p.ID(), "title", p.Title())
	return p, nil
}

func toValidationError(err error) error {
	switch {
	case errors.Is(err, product.ErrInvalidTitle),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidDuration),
		errors.Is(err, product.ErrInvalidStatus):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}
