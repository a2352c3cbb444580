package repository

import (
	"context"
	"errors"

	"github.com/treemarket/treemarket-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrBidBelowFloor is returned by CreateExceedingHighest when the bid does
// not strictly exceed the current floor.
var ErrBidBelowFloor = errors.New("bid does not exceed current highest")

type BidRepository interface {
	// CreateExceedingHighest inserts bid only if bid.Amount strictly exceeds
	// max(highest existing bid for the listing, listing price or 0). The
	// check and insert run in one transaction holding a row lock on the
	// listing, so concurrent placements against the same listing serialize.
	// The returned floor is valid whenever err is nil or ErrBidBelowFloor.
	CreateExceedingHighest(ctx context.Context, listing *model.Listing, bid *model.Bid) (float64, error)
	ListByListing(ctx context.Context, listingID string, limit int) ([]model.Bid, error)
	HighestAmount(ctx context.Context, listingID string) (*float64, error)
}

type bidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &bidRepository{db: db}
}

func (r *bidRepository) CreateExceedingHighest(ctx context.Context, listing *model.Listing, bid *model.Bid) (float64, error) {
	var floor float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Reacquire the listing under FOR UPDATE; this is the per-listing
		// serialization point for the read-validate-write sequence.
		var locked model.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", listing.ID).Error; err != nil {
			return err
		}

		if locked.Price != nil {
			floor = *locked.Price
		}
		var highest *float64
		if err := tx.Model(&model.Bid{}).
			Where("listing_id = ?", locked.ID).
			Select("MAX(amount)").
			Scan(&highest).Error; err != nil {
			return err
		}
		if highest != nil && *highest > floor {
			floor = *highest
		}

		if bid.Amount <= floor {
			return ErrBidBelowFloor
		}
		return tx.Create(bid).Error
	})
	return floor, err
}

func (r *bidRepository) ListByListing(ctx context.Context, listingID string, limit int) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("amount DESC").
		Limit(limit).
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *bidRepository) HighestAmount(ctx context.Context, listingID string) (*float64, error) {
	var highest *float64
	if err := r.db.WithContext(ctx).Model(&model.Bid{}).
		Where("listing_id = ?", listingID).
		Select("MAX(amount)").
		Scan(&highest).Error; err != nil {
		return nil, err
	}
	return highest, nil
}
