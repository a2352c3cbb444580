package service

import (
	"context"
	"sort"
	"strings"

	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"gorm.io/gorm"
)

type fakeListingRepo struct {
	listings map[string]model.Listing
	creates  int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]model.Listing)}
}

func (f *fakeListingRepo) Create(_ context.Context, listing *model.Listing) error {
	f.creates++
	f.listings[listing.ID] = *listing
	return nil
}

func (f *fakeListingRepo) FindByID(_ context.Context, id string) (*model.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (f *fakeListingRepo) ListActive(_ context.Context, filter repository.ListingFilter) ([]model.Listing, error) {
	var out []model.Listing
	for _, l := range f.listings {
		if l.Status != model.ListingStatusActive {
			continue
		}
		if filter.Species != "" && !strings.Contains(strings.ToLower(l.Species), strings.ToLower(filter.Species)) {
			continue
		}
		if filter.Suburb != "" && !strings.Contains(strings.ToLower(l.Suburb), strings.ToLower(filter.Suburb)) {
			continue
		}
		if filter.State != "" && l.State != filter.State {
			continue
		}
		if filter.PricingType != "" && string(l.PricingType) != filter.PricingType {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeBidRepo struct {
	bids []model.Bid
}

func (f *fakeBidRepo) CreateExceedingHighest(_ context.Context, listing *model.Listing, bid *model.Bid) (float64, error) {
	var floor float64
	if listing.Price != nil {
		floor = *listing.Price
	}
	for _, b := range f.bids {
		if b.ListingID == listing.ID && b.Amount > floor {
			floor = b.Amount
		}
	}
	if bid.Amount <= floor {
		return floor, repository.ErrBidBelowFloor
	}
	f.bids = append(f.bids, *bid)
	return floor, nil
}

func (f *fakeBidRepo) ListByListing(_ context.Context, listingID string, limit int) ([]model.Bid, error) {
	var out []model.Bid
	for _, b := range f.bids {
		if b.ListingID == listingID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBidRepo) HighestAmount(_ context.Context, listingID string) (*float64, error) {
	var highest *float64
	for _, b := range f.bids {
		if b.ListingID != listingID {
			continue
		}
		if highest == nil || b.Amount > *highest {
			amount := b.Amount
			highest = &amount
		}
	}
	return highest, nil
}

type fakeUserRepo struct {
	byAuth0 map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byAuth0: make(map[string]model.User)}
}

func (f *fakeUserRepo) Ensure(_ context.Context, user *model.User) (*model.User, error) {
	if existing, ok := f.byAuth0[user.Auth0ID]; ok {
		return &existing, nil
	}
	f.byAuth0[user.Auth0ID] = *user
	u := *user
	return &u, nil
}

func (f *fakeUserRepo) FindByAuth0ID(_ context.Context, auth0ID string) (*model.User, error) {
	u, ok := f.byAuth0[auth0ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.byAuth0 {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]model.User, error) {
	out := make(map[string]model.User, len(ids))
	for _, id := range ids {
		for _, u := range f.byAuth0 {
			if u.ID == id {
				out[id] = u
			}
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	row *model.SiteSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*model.SiteSettings, error) {
	if f.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	row := *f.row
	return &row, nil
}

func (f *fakeSettingsRepo) EnsureDefaults(_ context.Context) (*model.SiteSettings, error) {
	if f.row == nil {
		f.row = model.DefaultSiteSettings()
	}
	row := *f.row
	return &row, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *model.SiteSettings) error {
	row := *settings
	f.row = &row
	return nil
}
