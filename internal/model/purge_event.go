package model

// PurgeEvent records a requested cache invalidation for an origin. No real
// provider call happens; the event plus the origin's last_purge stamp are the
// whole effect.
type PurgeEvent struct {
	BaseModel
	OriginID    int    `gorm:"index;not null" json:"origin_id"`
	PurgeType   string `gorm:"type:varchar(16);not null;default:'full'" json:"purge_type"`
	Target      string `gorm:"type:varchar(255);not null;default:'*'" json:"target"`
	Status      string `gorm:"type:varchar(16);not null;default:'queued'" json:"status"`
	TriggeredBy string `gorm:"type:varchar(64);not null;default:'cli'" json:"triggered_by"`

	Origin *Origin `gorm:"foreignKey:OriginID" json:"origin,omitempty"`
}

// TableName specifies the table name
func (PurgeEvent) TableName() string {
	return "purge_events"
}

// PurgeType constants
const (
	PurgeTypeFull = "full"
	PurgeTypePath = "path"
	PurgeTypeTag  = "tag"
)

// Purge status constants. Events are created queued and no operation
// transitions them; complete/failed exist for the wire format only.
const (
	PurgeStatusQueued   = "queued"
	PurgeStatusComplete = "complete"
	PurgeStatusFailed   = "failed"
)
