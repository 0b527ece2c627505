package mappers

import (
	"subcommerce/internal/domain/product"
	"subcommerce/internal/infrastructure/persistence/models"
)

func ProductToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:           p.ID(),
		Title:        p.Title(),
		Description:  p.Description(),
		Price:        p.PriceMinor(),
		Status:       string(p.Status()),
		DurationDays: p.DurationDays(),
		DeletedAt:    p.DeletedAt(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func ProductToDomain(m *models.ProductModel) *product.Product {
	if m == nil {
		return nil
	}
	return product.ReconstructProduct(product.ReconstructParams{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		PriceMinor:   m.Price,
		Status:       product.Status(m.Status),
		DurationDays: m.DurationDays,
		DeletedAt:    m.DeletedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	})
}

func ProductsToDomain(ms []*models.ProductModel) []*product.Product {
	out := make([]*product.Product, 0, len(ms))
	for _, m := range ms {
		out = append(out, ProductToDomain(m))
	}
	return out
}
