package models

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"inventory-server/db"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// AssetListOptions is the untrusted filter bag from the query string.
// Page/Limit are already resolved to safe values by ParseAssetListOptions.
type AssetListOptions struct {
	Search     string
	CategoryID string
	Status     string
	UserID     *uint64
	Page       int
	Limit      int
}

// ParseAssetListOptions never fails: malformed numeric input falls back to
// the defaults so the listing stays available.
func ParseAssetListOptions(values url.Values) AssetListOptions {
	opts := AssetListOptions{
		Search:     values.Get("search"),
		CategoryID: values.Get("categoryId"),
		Status:     values.Get("status"),
		Page:       DefaultPage,
		Limit:      DefaultLimit,
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit >= 1 {
		opts.Limit = limit
	}
	if userID, err := strconv.ParseUint(values.Get("userId"), 10, 64); err == nil {
		opts.UserID = &userID
	}
	return opts
}

func (o *AssetListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Scope is the single source of truth for the filter predicate: the data
// query and the count query both apply it, so they can never drift apart.
// Every value is bound as a query parameter.
func (o *AssetListOptions) Scope() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(o.Search); search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			tx = tx.Where("LOWER(name) LIKE ? OR LOWER(serial_number) LIKE ?", pattern, pattern)
		}
		if o.CategoryID != "" && o.CategoryID != "undefined" {
			tx = tx.Where("category_id = ?", o.CategoryID)
		}
		if o.Status != "" && o.Status != "all" && o.Status != "undefined" {
			tx = tx.Where("status = ?", o.Status)
		}
		if o.UserID != nil {
			tx = tx.Where("user_id = ?", *o.UserID)
		}
		return tx
	}
}

// AssetList returns one page of matching assets plus the total match count,
// newest first (id is the deterministic tie-break).
func AssetList(ctx context.Context, opts AssetListOptions) ([]Asset, int64, error) {
	var total int64
	err := db.Instance.WithContext(ctx).
		Model(&Asset{}).
		Scopes(opts.Scope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, decodeStoreError(err, "")
	}
	assets := []Asset{}
	err = db.Instance.WithContext(ctx).
		Scopes(opts.Scope()).
		Order("created_at DESC, id DESC").
		Limit(opts.Limit).
		Offset(opts.Offset()).
		Find(&assets).Error
	if err != nil {
		return nil, 0, decodeStoreError(err, "")
	}
	return assets, total, nil
}
