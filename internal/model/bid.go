package model

import "time"

type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

type Bid struct {
	ID        string    `gorm:"primaryKey;size:26"`
	ListingID string    `gorm:"size:26;not null;index:idx_bids_listing_amount"`
	BidderID  string    `gorm:"size:26;not null;index"`
	Amount    float64   `gorm:"not null;index:idx_bids_listing_amount"`
	Message   string    `gorm:"type:text"`
	Status    BidStatus `gorm:"size:16;not null;default:pending"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Bid) TableName() string {
	return "bids"
}
