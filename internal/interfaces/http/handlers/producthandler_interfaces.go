package handlers

import (
	"context"

	"subcommerce/internal/application/product/usecases"
	"subcommerce/internal/domain/product"
)

type createProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*product.Product, error)
}

type getProductUseCase interface {
	Execute(ctx context.Context, productID uint) (*product.Product, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*product.Product, error)
}

type deleteProductUseCase interface {
	Execute(ctx context.Context, productID uint) error
}
