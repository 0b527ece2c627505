package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/product"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Product not found")
	}
	return p, nil
}
