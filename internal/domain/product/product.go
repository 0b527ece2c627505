package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"subcommerce/internal/shared/biztime"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

const DefaultDurationDays = 30

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidDuration = errors.New("duration days must be positive")
	ErrInvalidTitle    = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid product status")
)

// Product is a catalog item sold as a time-boxed subscription.
type Product struct {
	id           uint
	title        string
	description  *string
	priceMinor   int64
	status       Status
	durationDays int
	deletedAt    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProduct(title string, description *string, priceMinor int64, durationDays int) (*Product, error) {
	p := &Product{status: StatusActive}
	if err := p.apply(title, description, priceMinor, durationDays); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	p.createdAt = now
	p.updatedAt = now
	return p, nil
}

func (p *Product) apply(title string, description *string, priceMinor int64, durationDays int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	if priceMinor < 0 {
		return ErrInvalidPrice
	}
	if durationDays == 0 {
		durationDays = DefaultDurationDays
	}
	if durationDays < 0 {
		return ErrInvalidDuration
	}
	p.title = title
	p.description = description
	p.priceMinor = priceMinor
	p.durationDays = durationDays
	return nil
}

// UpdateDetails replaces the editable fields, validating them as NewProduct does.
func (p *Product) UpdateDetails(title string, description *string, priceMinor int64, durationDays int) error {
	if err := p.apply(title, description, priceMinor, durationDays); err != nil {
		return err
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Product) SetStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	p.status = status
	p.updatedAt = biztime.NowUTC()
	return nil
}

// SoftDelete stamps deleted_at; the row stays for existing subscriptions.
func (p *Product) SoftDelete(now time.Time) {
	if p.deletedAt != nil {
		return
	}
	p.deletedAt = &now
	p.updatedAt = now
}

func (p *Product) IsDeleted() bool {
	return p.deletedAt != nil
}

func (p *Product) IsActive() bool {
	return p.status == StatusActive && p.deletedAt == nil
}

func (p *Product) ID() uint { return p.id }
func (p *Product) Title() string { return p.title }
func (p *Product) Description() *string { return p.description }
func (p *Product) PriceMinor() int64 { return p.priceMinor }
func (p *Product) Status() Status { return p.status }
func (p *Product) DurationDays() int { return p.durationDays }
func (p *Product) DeletedAt() *time.Time { return p.deletedAt }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) SetID(id uint) {
	p.id = id
}

type ReconstructParams struct {
	ID           uint
	Title        string
	Description  *string
	PriceMinor   int64
	Status       Status
	DurationDays int
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructProduct(p ReconstructParams) *Product {
	return &Product{
		id:           p.ID,
		title:        p.Title,
		description:  p.Description,
		priceMinor:   p.PriceMinor,
		status:       p.Status,
		durationDays: p.DurationDays,
		deletedAt:    p.DeletedAt,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}
