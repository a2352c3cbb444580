package model

import "time"

const (
	DefaultHeroTitle       = "Find Your Perfect Tree"
	DefaultHeroDescription = "Connect with property owners, demolition sites, and tree sellers. Quality ex-ground stock for landscape architects, developers, and enthusiasts."
	DefaultCTATitle        = "Ready to Get Started?"
	DefaultCTADescription  = "Whether you have trees to sell or are looking for the perfect specimen, Tree Market connects you with the right people."
)

// SiteSettingsID is the fixed primary key of the singleton settings row.
const SiteSettingsID uint64 = 1

// SiteSettings holds site branding and copy. LogoURL is opaque to the
// server; admin clients send it as a data URI capped at 2MB.
type SiteSettings struct {
	ID              uint64    `gorm:"primaryKey"`
	LogoURL         string    `gorm:"column:logo_url;type:mediumtext"`
	HeroTitle       string    `gorm:"size:255;not null"`
	HeroDescription string    `gorm:"type:text;not null"`
	CTATitle        string    `gorm:"column:cta_title;size:255;not null"`
	CTADescription  string    `gorm:"column:cta_description;type:text;not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// DefaultSiteSettings returns the singleton row populated with documented
// default copy.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:              SiteSettingsID,
		HeroTitle:       DefaultHeroTitle,
		HeroDescription: DefaultHeroDescription,
		CTATitle:        DefaultCTATitle,
		CTADescription:  DefaultCTADescription,
	}
}
