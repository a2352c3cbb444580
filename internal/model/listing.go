package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type PricingType string

const (
	PricingTypeFixed   PricingType = "fixed"
	PricingTypeAuction PricingType = "auction"
)

func (p PricingType) Valid() bool {
	return p == PricingTypeFixed || p == PricingTypeAuction
}

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusSold    ListingStatus = "sold"
	ListingStatusExpired ListingStatus = "expired"
	ListingStatusRemoved ListingStatus = "removed"
)

type HealthStatus string

const (
	HealthStatusExcellent HealthStatus = "excellent"
	HealthStatusGood      HealthStatus = "good"
	HealthStatusFair      HealthStatus = "fair"
	HealthStatusPoor      HealthStatus = "poor"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthStatusExcellent, HealthStatusGood, HealthStatusFair, HealthStatusPoor:
		return true
	}
	return false
}

type Listing struct {
	ID            string        `gorm:"primaryKey;size:26"`
	Title         string        `gorm:"size:200;not null"`
	Description   string        `gorm:"type:text"`
	Species       string        `gorm:"size:200;not null;index"`
	Height        *float64      `gorm:"column:height"`
	TrunkDiameter *float64      `gorm:"column:trunk_diameter"`
	CanopyWidth   *float64      `gorm:"column:canopy_width"`
	HealthStatus  *HealthStatus `gorm:"size:16"`
	Age           *float64      `gorm:"column:age"`
	Address       string        `gorm:"size:255;not null"`
	Suburb        string        `gorm:"size:120;not null;index:idx_listings_suburb_state"`
	State         string        `gorm:"size:32;not null;index:idx_listings_suburb_state"`
	Postcode      string        `gorm:"size:16;not null"`
	Latitude      *float64      `gorm:"column:latitude"`
	Longitude     *float64      `gorm:"column:longitude"`
	PricingType   PricingType   `gorm:"size:16;not null"`
	Price         *float64      `gorm:"column:price"`
	Status        ListingStatus `gorm:"size:16;not null;default:active;index:idx_listings_status_created"`
	Images        StringList    `gorm:"type:json"`
	PickupWindows PickupWindows `gorm:"type:json"`
	SellerID      string        `gorm:"size:26;not null;index"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;index:idx_listings_status_created"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
	ExpiresAt     *time.Time    `gorm:"column:expires_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// StringList is a JSON-encoded array column, used for image URLs.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for StringList", src)
}
