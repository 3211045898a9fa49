package models

import (
	"context"

	"inventory-server/db"

	"gorm.io/gorm"
)

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardStats struct {
	TotalValue           float64         `json:"total_value"`
	AssetCount           int64           `json:"asset_count"`
	CategoryCount        int64           `json:"category_count"`
	TopAssetName         string          `json:"top_asset_name"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	StatusDistribution   []StatusCount   `json:"status_distribution"`
}

// GetDashboardStats computes all roll-ups inside one transaction so the
// totals and the breakdowns come from a single consistent snapshot.
// userID narrows the stats to one user's custody list; nil covers the
// whole inventory.
func GetDashboardStats(ctx context.Context, userID *uint64) (*DashboardStats, error) {
	stats := DashboardStats{
		TopAssetName:         "N/A",
		CategoryDistribution: []CategoryCount{},
		StatusDistribution:   []StatusCount{},
	}
	err := db.Instance.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := func() *gorm.DB {
			q := tx.Model(&Asset{})
			if userID != nil {
				q = q.Where("user_id = ?", *userID)
			}
			return q
		}
		row := scoped().
			Select("COALESCE(SUM(value), 0), COUNT(*), COUNT(DISTINCT category_id)").
			Row()
		if err := row.Scan(&stats.TotalValue, &stats.AssetCount, &stats.CategoryCount); err != nil {
			return err
		}
		// Highest-value asset; id breaks value ties deterministically
		names := []string{}
		if err := scoped().
			Select("name").
			Order("value DESC, id ASC").
			Limit(1).
			Pluck("name", &names).Error; err != nil {
			return err
		}
		if len(names) > 0 {
			stats.TopAssetName = names[0]
		}
		// Inner join: categories without assets are excluded
		if err := scoped().
			Select("categories.name AS name, COUNT(*) AS count").
			Joins("JOIN categories ON categories.id = assets.category_id").
			Group("categories.id, categories.name").
			Order("count DESC, name ASC").
			Scan(&stats.CategoryDistribution).Error; err != nil {
			return err
		}
		// Absent statuses are zero-suppressed
		return scoped().
			Select("status, COUNT(*) AS count").
			Group("status").
			Order("status ASC").
			Scan(&stats.StatusDistribution).Error
	})
	if err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &stats, nil
}
