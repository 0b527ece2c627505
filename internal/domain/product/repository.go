package product

import "context"

type ListFilter struct {
	Status        *Status
	Search        string
	MinPriceMinor *int64
	MaxPriceMinor *int64
	Page          int
	PerPage       int
}

// Repository persists products. GetByID returns (nil, nil) for missing or
// soft-deleted rows.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	// GetByIDWithDeleted also returns soft-deleted rows, for reading the
	// terms of products that existing subscriptions still reference.
	GetByIDWithDeleted(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
}
