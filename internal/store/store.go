package store

import (
	"fmt"
	"strings"
	"time"

	"cdn_manager/internal/model"

	"gorm.io/gorm"
)

// Defaults applied when a zero value is passed
const (
	DefaultProvider    = "cloudflare"
	DefaultTTL         = 3600
	DefaultPurgeType   = model.PurgeTypeFull
	DefaultPurgeTarget = "*"
	DefaultTriggeredBy = "cli"
)

// Store is the configuration store: the durable home for origins, cache rules
// and purge events. All operations are synchronous; multi-write operations run
// inside a single transaction.
type Store struct {
	db *gorm.DB
}

// New creates a store over an opened and migrated database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// OriginParams are the inputs for AddOrigin. Provider defaults to
// "cloudflare" and CacheTTL to 3600 when left zero.
type OriginParams struct {
	Name      string
	OriginURL string
	CDNURL    string
	Provider  string
	CacheTTL  int
	Notes     string
}

// AddOrigin registers a new CDN origin. The name must be unique; the created
// row comes back with its assigned id, created_at and a nil last_purge.
func (s *Store) AddOrigin(p OriginParams) (*model.Origin, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrEmptyName
	}
	if p.CacheTTL < 0 {
		return nil, ErrInvalidTTL
	}
	if p.Provider == "" {
		p.Provider = DefaultProvider
	}
	if p.CacheTTL == 0 {
		p.CacheTTL = DefaultTTL
	}

	origin := model.Origin{
		Name:      p.Name,
		OriginURL: p.OriginURL,
		CDNURL:    p.CDNURL,
		Provider:  p.Provider,
		Status:    model.OriginStatusActive,
		CacheTTL:  p.CacheTTL,
		Notes:     p.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.Origin{}).Where("name = ?", p.Name).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check name uniqueness: %w", err)
		}
		if exists > 0 {
			return ErrDuplicateName
		}
		if err := tx.Create(&origin).Error; err != nil {
			return fmt.Errorf("failed to create origin: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &origin, nil
}

// ListOrigins returns all origins ordered by name ascending. A non-empty
// provider filters to exact matches; no match is an empty slice, not an error.
func (s *Store) ListOrigins(provider string) ([]model.Origin, error) {
	q := s.db.Order("name ASC")
	if provider != "" {
		q = q.Where("provider = ?", provider)
	}

	var origins []model.Origin
	if err := q.Find(&origins).Error; err != nil {
		return nil, fmt.Errorf("failed to list origins: %w", err)
	}
	return origins, nil
}

// GetOrigin fetches one origin by id.
func (s *Store) GetOrigin(id int) (*model.Origin, error) {
	var origin model.Origin
	if err := s.db.First(&origin, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOriginNotFound
		}
		return nil, fmt.Errorf("failed to load origin: %w", err)
	}
	return &origin, nil
}

// RuleParams are the inputs for AddCacheRule. TTL defaults to 3600 when zero,
// RuleType to "cache" when empty. CacheHeaders defaults to true at the CLI
// and API layers; the store persists whatever it is given.
type RuleParams struct {
	OriginID     int
	PathPattern  string
	TTL          int
	CacheHeaders bool
	RuleType     string
}

// AddCacheRule attaches a path-based TTL override rule to an origin. The
// origin must exist.
func (s *Store) AddCacheRule(p RuleParams) (*model.CacheRule, error) {
	if p.TTL < 0 {
		return nil, ErrInvalidTTL
	}
	if p.TTL == 0 {
		p.TTL = DefaultTTL
	}
	if p.RuleType == "" {
		p.RuleType = model.RuleTypeCache
	}

	rule := model.CacheRule{
		OriginID:     p.OriginID,
		PathPattern:  p.PathPattern,
		TTL:          p.TTL,
		CacheHeaders: p.CacheHeaders,
		RuleType:     p.RuleType,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.Origin{}).Where("id = ?", p.OriginID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check origin: %w", err)
		}
		if exists == 0 {
			return ErrOriginNotFound
		}
		if err := tx.Create(&rule).Error; err != nil {
			return fmt.Errorf("failed to create cache rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

// PurgeParams are the inputs for PurgeCache. PurgeType defaults to "full",
// Target to "*" and TriggeredBy to "cli" when left empty.
type PurgeParams struct {
	OriginID    int
	PurgeType   string
	Target      string
	TriggeredBy string
}

// PurgeCache queues a purge event and stamps the origin's last_purge time.
// Both writes happen in one transaction and share one timestamp; if either
// fails neither is applied.
func (s *Store) PurgeCache(p PurgeParams) (*model.PurgeEvent, error) {
	if p.PurgeType == "" {
		p.PurgeType = DefaultPurgeType
	}
	if p.Target == "" {
		p.Target = DefaultPurgeTarget
	}
	if p.TriggeredBy == "" {
		p.TriggeredBy = DefaultTriggeredBy
	}

	ts := time.Now()
	event := model.PurgeEvent{
		BaseModel:   model.BaseModel{CreatedAt: ts},
		OriginID:    p.OriginID,
		PurgeType:   p.PurgeType,
		Target:      p.Target,
		Status:      model.PurgeStatusQueued,
		TriggeredBy: p.TriggeredBy,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Origin{}).Where("id = ?", p.OriginID).Update("last_purge", ts)
		if res.Error != nil {
			return fmt.Errorf("failed to stamp last_purge: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrOriginNotFound
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create purge event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}
