package store

import (
	"fmt"
	"time"

	"cdn_manager/internal/model"

	"gorm.io/gorm"
)

// StatusSummary is the aggregate fleet view returned by Status.
type StatusSummary struct {
	TotalOrigins int64            `json:"total_origins"`
	TotalRules   int64            `json:"total_rules"`
	TotalPurges  int64            `json:"total_purges"`
	Purges24h    int64            `json:"purges_24h"`
	ByProvider   map[string]int64 `json:"by_provider"`
	ByStatus     map[string]int64 `json:"by_status"`
}

// ExportPayload is the full configuration snapshot returned by Export. The
// caller is responsible for serializing it to a file.
type ExportPayload struct {
	ExportedAt        time.Time          `json:"exported_at"`
	Origins           []model.Origin     `json:"origins"`
	CacheRules        []model.CacheRule  `json:"cache_rules"`
	RecentPurgeEvents []model.PurgeEvent `json:"recent_purge_events"`
}

// groupCount receives GROUP BY rows
type groupCount struct {
	Key   string
	Count int64
}

// Status computes the fleet summary from a single consistent read of the
// store. Purges24h counts events created within the trailing 24 hours of
// wall-clock time at call time.
func (s *Store) Status() (*StatusSummary, error) {
	summary := StatusSummary{
		ByProvider: make(map[string]int64),
		ByStatus:   make(map[string]int64),
	}
	cutoff := time.Now().Add(-24 * time.Hour)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Origin{}).Count(&summary.TotalOrigins).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.CacheRule{}).Count(&summary.TotalRules).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PurgeEvent{}).Count(&summary.TotalPurges).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PurgeEvent{}).Where("created_at > ?", cutoff).Count(&summary.Purges24h).Error; err != nil {
			return err
		}

		var rows []groupCount
		if err := tx.Model(&model.Origin{}).Select("provider AS key, COUNT(*) AS count").Group("provider").Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			summary.ByProvider[r.Key] = r.Count
		}

		rows = rows[:0]
		if err := tx.Model(&model.Origin{}).Select("status AS key, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			summary.ByStatus[r.Key] = r.Count
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute status: %w", err)
	}

	return &summary, nil
}

// exportEventLimit caps the purge history included in an export.
const exportEventLimit = 100

// Export snapshots the whole configuration: all origins in name order, all
// cache rules in insertion order, and the most recent purge events newest
// first.
func (s *Store) Export() (*ExportPayload, error) {
	payload := ExportPayload{ExportedAt: time.Now()}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("name ASC").Find(&payload.Origins).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&payload.CacheRules).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at DESC, id DESC").Limit(exportEventLimit).Find(&payload.RecentPurgeEvents).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export configuration: %w", err)
	}

	return &payload, nil
}
