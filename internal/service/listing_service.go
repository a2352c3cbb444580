package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"gorm.io/gorm"
)

// Sentinel price labels for listings with nothing to show yet.
const (
	PriceLabelContactSeller = "Contact for price"
	PriceLabelNoBids        = "No bids yet"
)

type CreateListingInput struct {
	Title         string
	Description   string
	Species       string
	Height        *float64
	TrunkDiameter *float64
	CanopyWidth   *float64
	HealthStatus  *model.HealthStatus
	Age           *float64
	Address       string
	Suburb        string
	State         string
	Postcode      string
	Latitude      *float64
	Longitude     *float64
	PricingType   model.PricingType
	Price         *float64
	Images        []string
	PickupWindows []model.PickupWindow
	ExpiresAt     *time.Time
}

// SellerSummary is the seller's public profile attached to listing reads.
type SellerSummary struct {
	ID           string
	Name         string
	BusinessName string
	Email        string
}

type BidWithBidder struct {
	Bid        model.Bid
	BidderName string
}

type ListingDetail struct {
	Listing      model.Listing
	Seller       *SellerSummary
	Bids         []BidWithBidder
	CurrentPrice string
}

type ListingSummary struct {
	Listing model.Listing
	Seller  *SellerSummary
}

type ListingService interface {
	Create(ctx context.Context, sellerID string, in CreateListingInput) (*model.Listing, error)
	// Get returns the listing, its seller's public profile, and for auction
	// listings the top bidLimit bids by descending amount.
	Get(ctx context.Context, id string, bidLimit int) (*ListingDetail, error)
	List(ctx context.Context, f repository.ListingFilter) ([]ListingSummary, error)
}

type listingService struct {
	listings repository.ListingRepository
	bids     repository.BidRepository
	users    repository.UserRepository
}

func NewListingService(listings repository.ListingRepository, bids repository.BidRepository, users repository.UserRepository) ListingService {
	return &listingService{listings: listings, bids: bids, users: users}
}

func (s *listingService) Create(ctx context.Context, sellerID string, in CreateListingInput) (*model.Listing, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Species = strings.TrimSpace(in.Species)
	in.Address = strings.TrimSpace(in.Address)
	in.Suburb = strings.TrimSpace(in.Suburb)
	in.State = strings.TrimSpace(in.State)
	in.Postcode = strings.TrimSpace(in.Postcode)

	if sellerID == "" {
		return nil, ErrUnauthenticated
	}
	if in.Title == "" || in.Species == "" || in.Address == "" || in.Suburb == "" ||
		in.State == "" || in.Postcode == "" || in.PricingType == "" {
		return nil, NewValidationError("Missing required fields")
	}
	if !in.PricingType.Valid() {
		return nil, NewValidationError(fmt.Sprintf("invalid pricing type: %q", in.PricingType))
	}
	if in.HealthStatus != nil && !in.HealthStatus.Valid() {
		return nil, NewValidationError(fmt.Sprintf("invalid health status: %q", *in.HealthStatus))
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, NewValidationError("price must not be negative")
	}

	windows := make(model.PickupWindows, 0, len(in.PickupWindows))
	for _, w := range in.PickupWindows {
		if err := w.Validate(); err != nil {
			return nil, NewValidationError(err.Error())
		}
		windows = append(windows, w.Normalize())
	}

	listing := &model.Listing{
		ID:            model.NewID(),
		Title:         in.Title,
		Description:   strings.TrimSpace(in.Description),
		Species:       in.Species,
		Height:        in.Height,
		TrunkDiameter: in.TrunkDiameter,
		CanopyWidth:   in.CanopyWidth,
		HealthStatus:  in.HealthStatus,
		Age:           in.Age,
		Address:       in.Address,
		Suburb:        in.Suburb,
		State:         in.State,
		Postcode:      in.Postcode,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		PricingType:   in.PricingType,
		Price:         in.Price,
		Status:        model.ListingStatusActive,
		Images:        model.StringList(in.Images),
		PickupWindows: windows,
		SellerID:      sellerID,
		ExpiresAt:     in.ExpiresAt,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) Get(ctx context.Context, id string, bidLimit int) (*ListingDetail, error) {
	if bidLimit <= 0 || bidLimit > 10 {
		bidLimit = 10
	}
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &ListingDetail{Listing: *listing}

	if seller, err := s.users.FindByID(ctx, listing.SellerID); err == nil {
		detail.Seller = &SellerSummary{
			ID:           seller.ID,
			Name:         seller.Name,
			BusinessName: seller.BusinessName,
			Email:        seller.Email,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bids, err := s.bids.ListByListing(ctx, listing.ID, bidLimit)
	if err != nil {
		return nil, err
	}
	bidderIDs := make([]string, 0, len(bids))
	for _, b := range bids {
		bidderIDs = append(bidderIDs, b.BidderID)
	}
	bidders, err := s.users.FindByIDs(ctx, bidderIDs)
	if err != nil {
		return nil, err
	}
	detail.Bids = make([]BidWithBidder, 0, len(bids))
	for _, b := range bids {
		detail.Bids = append(detail.Bids, BidWithBidder{
			Bid:        b,
			BidderName: bidders[b.BidderID].Name,
		})
	}

	var highest *float64
	if len(bids) > 0 {
		highest = &bids[0].Amount
	}
	detail.CurrentPrice = CurrentPriceLabel(listing, highest)

	return detail, nil
}

func (s *listingService) List(ctx context.Context, f repository.ListingFilter) ([]ListingSummary, error) {
	listings, err := s.listings.ListActive(ctx, f)
	if err != nil {
		return nil, err
	}

	sellerIDs := make([]string, 0, len(listings))
	for _, l := range listings {
		sellerIDs = append(sellerIDs, l.SellerID)
	}
	sellers, err := s.users.FindByIDs(ctx, sellerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ListingSummary, 0, len(listings))
	for _, l := range listings {
		summary := ListingSummary{Listing: l}
		if seller, ok := sellers[l.SellerID]; ok {
			summary.Seller = &SellerSummary{
				ID:           seller.ID,
				Name:         seller.Name,
				BusinessName: seller.BusinessName,
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// CurrentPriceLabel derives the price shown for a listing; it is never
// stored. Fixed listings show their price (or a contact sentinel). Auction
// listings show the highest bid, falling back to the starting price.
func CurrentPriceLabel(listing *model.Listing, highestBid *float64) string {
	switch listing.PricingType {
	case model.PricingTypeFixed:
		if listing.Price == nil {
			return PriceLabelContactSeller
		}
		return "$" + formatAmount(*listing.Price)
	case model.PricingTypeAuction:
		if highestBid != nil {
			return "$" + formatAmount(*highestBid)
		}
		if listing.Price != nil {
			return "$" + formatAmount(*listing.Price)
		}
		return PriceLabelNoBids
	}
	return PriceLabelContactSeller
}
