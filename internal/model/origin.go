package model

import (
	"time"
)

// Origin is a CDN-fronted site: where the content actually lives and the
// CDN hostname serving it.
type Origin struct {
	BaseModel
	Name      string     `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	OriginURL string     `gorm:"type:varchar(255);not null" json:"origin_url"`
	CDNURL    string     `gorm:"type:varchar(255);not null" json:"cdn_url"`
	Provider  string     `gorm:"type:varchar(64);not null;default:'cloudflare'" json:"provider"`
	Status    string     `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CacheTTL  int        `gorm:"not null;default:3600" json:"cache_ttl"`
	Notes     string     `gorm:"type:varchar(255);default:''" json:"notes"`
	LastPurge *time.Time `json:"last_purge"`

	Rules []CacheRule `gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE" json:"rules,omitempty"`
}

// TableName specifies the table name
func (Origin) TableName() string {
	return "cdn_origins"
}

// Origin status constants
const (
	OriginStatusActive = "active"
	OriginStatusPaused = "paused"
	OriginStatusError  = "error"
)

// Known provider labels. Free text on the record, the list is only a
// convention used by the CLI help output.
const (
	ProviderCloudflare = "cloudflare"
	ProviderFastly     = "fastly"
	ProviderCloudFront = "cloudfront"
	ProviderBunny      = "bunny"
)
