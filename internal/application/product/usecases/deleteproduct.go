package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/product"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// DeleteProductUseCase soft-deletes a product. Subscriptions that reference
// it keep working until they expire.
type DeleteProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(productRepo product.Repository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uint) error {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return apperrors.NewNotFoundError("Product not found")
	}

	p.SoftDelete(biztime.NowUTC())
	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to delete product", "product_id", productID, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	uc.logger.Infow("product deleted", "product_id", productID)
	return nil
}
