package repository

import (
	"context"
	"strings"

	"github.com/treemarket/treemarket-backend/internal/model"
	"gorm.io/gorm"
)

// ListingFilter narrows ListActive. Species and Suburb are case-insensitive
// substring matches; State and PricingType are exact.
type ListingFilter struct {
	Species     string
	Suburb      string
	State       string
	PricingType string
}

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id string) (*model.Listing, error)
	ListActive(ctx context.Context, f ListingFilter) ([]model.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) ListActive(ctx context.Context, f ListingFilter) ([]model.Listing, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", model.ListingStatusActive)
	if s := strings.TrimSpace(f.Species); s != "" {
		q = q.Where("LOWER(species) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Suburb); s != "" {
		q = q.Where("LOWER(suburb) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.State); s != "" {
		q = q.Where("state = ?", s)
	}
	if s := strings.TrimSpace(f.PricingType); s != "" {
		q = q.Where("pricing_type = ?", s)
	}

	var listings []model.Listing
	if err := q.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
