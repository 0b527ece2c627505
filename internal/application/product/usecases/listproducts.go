package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/shared/constants"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// DefaultProductPageSize is the catalog page size when per_page is absent.
const DefaultProductPageSize = 10

type ListProductsQuery struct {
	Status   string
	Search   string
	MinPrice string
	MaxPrice string
	Page     int
	PerPage  int
}

type ListProductsResult struct {
	Products []*product.Product
	Total    int64
	Page     int
	PerPage  int
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	filter := product.ListFilter{
		Search:  query.Search,
		Page:    query.Page,
		PerPage: query.PerPage,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PerPage < 1 {
		filter.PerPage = DefaultProductPageSize
	}
	if filter.PerPage > constants.MaxPageSize {
		filter.PerPage = constants.MaxPageSize
	}

	if query.Status != "" {
		status := product.Status(query.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("Invalid status filter", query.Status)
		}
		filter.Status = &status
	}
	if query.MinPrice != "" {
		v, err := money.ParseDecimal(query.MinPrice)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid min_price", query.MinPrice)
		}
		filter.MinPriceMinor = &v
	}
	if query.MaxPrice != "" {
		v, err := money.ParseDecimal(query.MaxPrice)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid max_price", query.MaxPrice)
		}
		filter.MaxPriceMinor = &v
	}

	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsResult{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		PerPage:  filter.PerPage,
	}, nil
}
