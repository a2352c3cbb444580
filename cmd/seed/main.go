package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/treemarket/treemarket-backend/internal/config"
	"github.com/treemarket/treemarket-backend/internal/db"
	"github.com/treemarket/treemarket-backend/internal/model"
)

type seedListing struct {
	Title       string
	Description string
	Species     string
	Suburb      string
	State       string
	Postcode    string
	PricingType model.PricingType
	Price       float64
	Height      float64
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.User{}, &model.Listing{}, &model.Bid{}, &model.SiteSettings{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var count int64
	if err := gdb.Model(&model.Listing{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count listings: %w", err)
	}
	if count > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("listings already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	seller := &model.User{
		ID:           model.NewID(),
		Auth0ID:      "seed|tree-market-demo",
		Email:        "demo-seller@example.com",
		Name:         "Demo Seller",
		BusinessName: "Heritage Tree Relocations",
	}
	if err := gdb.Where("auth0_id = ?", seller.Auth0ID).FirstOrCreate(seller).Error; err != nil {
		return fmt.Errorf("seed seller: %w", err)
	}

	for _, s := range buildSeedListings() {
		price := s.Price
		height := s.Height
		listing := &model.Listing{
			ID:          model.NewID(),
			Title:       s.Title,
			Description: s.Description,
			Species:     s.Species,
			Height:      &height,
			Address:     "Pickup address shared after contact",
			Suburb:      s.Suburb,
			State:       s.State,
			Postcode:    s.Postcode,
			PricingType: s.PricingType,
			Price:       &price,
			Status:      model.ListingStatusActive,
			PickupWindows: model.PickupWindows{{
				Type:       model.PickupWindowFlexible,
				DaysOfWeek: []string{"saturday", "sunday"},
				Notes:      "Crane access required",
			}},
			SellerID: seller.ID,
		}
		if err := gdb.Create(listing).Error; err != nil {
			return fmt.Errorf("seed listing %q: %w", s.Title, err)
		}
		log.Printf("seeded listing %s (%s)", listing.Title, listing.ID)
	}

	log.Printf("seed completed at %s", time.Now().Format(time.RFC3339))
	return nil
}

func buildSeedListings() []seedListing {
	return []seedListing{
		{
			Title:       "Mature Olive Tree, 80+ years",
			Description: "Ex-grove olive with a sculptural trunk, boxed and root-pruned last season.",
			Species:     "Olea europaea",
			Suburb:      "Mudgee", State: "NSW", Postcode: "2850",
			PricingType: model.PricingTypeAuction, Price: 500, Height: 4.5,
		},
		{
			Title:       "Canary Island Date Palm",
			Description: "Healthy specimen from a demolition site, trunk 3m clear.",
			Species:     "Phoenix canariensis",
			Suburb:      "Geelong", State: "VIC", Postcode: "3220",
			PricingType: model.PricingTypeAuction, Price: 1200, Height: 6,
		},
		{
			Title:       "Japanese Maple, garden removal",
			Description: "Acer palmatum in excellent health, suits courtyard planting.",
			Species:     "Acer palmatum",
			Suburb:      "Hobart", State: "TAS", Postcode: "7000",
			PricingType: model.PricingTypeFixed, Price: 350, Height: 2.8,
		},
		{
			Title:       "Frangipani, established",
			Description: "Multi-trunk frangipani, flowers white with yellow centre.",
			Species:     "Plumeria rubra",
			Suburb:      "Paddington", State: "QLD", Postcode: "4064",
			PricingType: model.PricingTypeFixed, Price: 600, Height: 3.2,
		},
	}
}
