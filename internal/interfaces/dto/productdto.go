package dto

import (
	"encoding/json"
	"time"

	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/shared/services/markdown"
)

// CreateProductRequest carries price as a decimal ("99.99"); it is stored in minor units.
type CreateProductRequest struct {
	Title        string      `json:"title" binding:"required,max=255"`
	Description  *string     `json:"description"`
	Price        json.Number `json:"price" binding:"required"`
	DurationDays int         `json:"duration_days" binding:"omitempty,min=1,max=3650"`
	Status       string      `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateProductRequest leaves nil fields unchanged.
type UpdateProductRequest struct {
	Title        *string      `json:"title" binding:"omitempty,max=255"`
	Description  *string      `json:"description"`
	Price        *json.Number `json:"price"`
	DurationDays *int         `json:"duration_days" binding:"omitempty,min=1,max=3650"`
	Status       *string      `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ProductResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	Price           string    `json:"price"`
	Status          string    `json:"status"`
	DurationDays    int       `json:"duration_days"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToProductResponse renders the markdown description when md is non-nil.
// A description that fails to render is returned without HTML.
func ToProductResponse(p *product.Product, md markdown.MarkdownService) *ProductResponse {
	if p == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:           p.ID(),
		Title:        p.Title(),
		Description:  p.Description(),
		Price:        money.FormatMinor(p.PriceMinor()),
		Status:       string(p.Status()),
		DurationDays: p.DurationDays(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
	if md != nil && p.Description() != nil && *p.Description() != "" {
		if html, err := md.ToHTMLSanitized(*p.Description()); err == nil {
			resp.DescriptionHTML = html
		}
	}
	return resp
}

func ToProductResponses(products []*product.Product, md markdown.MarkdownService) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p, md))
	}
	return out
}
