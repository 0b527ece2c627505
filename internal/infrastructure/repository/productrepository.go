package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"subcommerce/internal/domain/product"
	"subcommerce/internal/infrastructure/persistence/mappers"
	"subcommerce/internal/infrastructure/persistence/models"
	"subcommerce/internal/shared/db"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	model := mappers.ProductToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model := mappers.ProductToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":         model.Title,
			"description":   model.Description,
			"price":         model.Price,
			"status":        model.Status,
			"duration_days": model.DurationDays,
			"deleted_at":    model.DeletedAt,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.NotDeleted()).Where("id = ?", id))
}

func (r *ProductRepository) GetByIDWithDeleted(ctx context.Context, id uint) (*product.Product, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *ProductRepository) first(query *gorm.DB) (*product.Product, error) {
	var model models.ProductModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return mappers.ProductToDomain(&model), nil
}

func (r *ProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Scopes(db.NotDeleted())

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.MinPriceMinor != nil {
		query = query.Where("price >= ?", *filter.MinPriceMinor)
	}
	if filter.MaxPriceMinor != nil {
		query = query.Where("price <= ?", *filter.MaxPriceMinor)
	}
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	page, perPage := filter.Page, filter.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var productModels []*models.ProductModel
	if err := query.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return mappers.ProductsToDomain(productModels), total, nil
}
