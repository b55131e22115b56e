package model

// CacheRule is a path-scoped TTL/behavior override attached to one origin.
type CacheRule struct {
	BaseModel
	OriginID     int    `gorm:"index;not null" json:"origin_id"`
	PathPattern  string `gorm:"type:varchar(255);not null" json:"path_pattern"`
	TTL          int    `gorm:"not null;default:3600" json:"ttl"`
	// CacheHeaders has no column default on purpose: gorm would skip a
	// false value on insert if one were set. Callers always supply it.
	CacheHeaders bool   `gorm:"not null" json:"cache_headers"`
	RuleType     string `gorm:"type:varchar(16);not null;default:'cache'" json:"rule_type"`

	Origin *Origin `gorm:"foreignKey:OriginID" json:"origin,omitempty"`
}

// TableName specifies the table name
func (CacheRule) TableName() string {
	return "cache_rules"
}

// RuleType constants
const (
	RuleTypeCache  = "cache"  // cache under the rule's TTL
	RuleTypeBypass = "bypass" // always go to origin
	RuleTypeStream = "stream" // pass-through for streaming content
)
