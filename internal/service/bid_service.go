package service

import (
	"context"
	"errors"
	"strings"

	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"gorm.io/gorm"
)

type BidService interface {
	// Place records a bid against an active auction listing. The amount must
	// strictly exceed max(highest existing bid, listing price or 0); the
	// check is atomic per listing, so two concurrent bids can never both
	// clear the same floor.
	Place(ctx context.Context, listingID, bidderID string, amount float64, message string) (*model.Bid, error)
}

type bidService struct {
	listings repository.ListingRepository
	bids     repository.BidRepository
}

func NewBidService(listings repository.ListingRepository, bids repository.BidRepository) BidService {
	return &bidService{listings: listings, bids: bids}
}

func (s *bidService) Place(ctx context.Context, listingID, bidderID string, amount float64, message string) (*model.Bid, error) {
	if bidderID == "" {
		return nil, ErrUnauthenticated
	}
	if listingID == "" || amount <= 0 {
		return nil, NewValidationError("Listing ID and amount are required")
	}

	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if listing.Status != model.ListingStatusActive {
		return nil, ErrListingNotActive
	}
	if listing.PricingType != model.PricingTypeAuction {
		return nil, ErrListingNotAuction
	}

	bid := &model.Bid{
		ID:        model.NewID(),
		ListingID: listing.ID,
		BidderID:  bidderID,
		Amount:    amount,
		Message:   strings.TrimSpace(message),
		Status:    model.BidStatusPending,
	}
	floor, err := s.bids.CreateExceedingHighest(ctx, listing, bid)
	if err != nil {
		if errors.Is(err, repository.ErrBidBelowFloor) {
			return nil, &BidTooLowError{Floor: floor}
		}
		return nil, err
	}
	return bid, nil
}
