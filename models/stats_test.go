package models

import (
	"context"
	"testing"
)

func TestGetDashboardStats(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	laptops := mustCreateCategory(t, "Laptops")
	phones := mustCreateCategory(t, "Phones")
	mustCreateCategory(t, "Empty")

	mustCreateAsset(t, AssetInput{
		Name: "MacBook", SerialNumber: "SN-1", Value: floatPtr(100),
		CategoryID: &laptops.ID,
	})
	mustCreateAsset(t, AssetInput{
		Name: "iPhone", SerialNumber: "SN-2", Value: floatPtr(250.50),
		CategoryID: &phones.ID, Status: StatusInUse, UserID: uintPtr(7),
	})
	mustCreateAsset(t, AssetInput{
		Name: "Cable", SerialNumber: "SN-3", Value: floatPtr(0),
		CategoryID: &phones.ID,
	})

	stats, err := GetDashboardStats(ctx, nil)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalValue != 350.50 {
		t.Errorf("total_value = %v, want 350.50", stats.TotalValue)
	}
	if stats.AssetCount != 3 {
		t.Errorf("asset_count = %d, want 3", stats.AssetCount)
	}
	if stats.CategoryCount != 2 {
		t.Errorf("category_count = %d, want 2 (only categories in use)", stats.CategoryCount)
	}
	if stats.TopAssetName != "iPhone" {
		t.Errorf("top_asset_name = %q, want iPhone", stats.TopAssetName)
	}

	distribution := map[string]int64{}
	for _, entry := range stats.CategoryDistribution {
		distribution[entry.Name] = entry.Count
	}
	if distribution["Laptops"] != 1 || distribution["Phones"] != 2 {
		t.Errorf("category_distribution = %v, want Laptops:1 Phones:2", distribution)
	}
	if _, present := distribution["Empty"]; present {
		t.Error("categories with zero assets must be excluded from the distribution")
	}

	statuses := map[string]int64{}
	for _, entry := range stats.StatusDistribution {
		statuses[entry.Status] = entry.Count
	}
	if statuses[StatusAvailable] != 2 || statuses[StatusInUse] != 1 {
		t.Errorf("status_distribution = %v, want available:2 in-use:1", statuses)
	}
	if _, present := statuses[StatusRetired]; present {
		t.Error("absent statuses must be zero-suppressed")
	}
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	newTestDB(t)

	stats, err := GetDashboardStats(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalValue != 0 {
		t.Errorf("total_value = %v, want 0 with no rows", stats.TotalValue)
	}
	if stats.AssetCount != 0 {
		t.Errorf("asset_count = %d, want 0", stats.AssetCount)
	}
	if stats.TopAssetName != "N/A" {
		t.Errorf("top_asset_name = %q, want N/A", stats.TopAssetName)
	}
	if len(stats.CategoryDistribution) != 0 || len(stats.StatusDistribution) != 0 {
		t.Error("expected empty distributions with no rows")
	}
}

func TestGetDashboardStatsUserScope(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()
	category := mustCreateCategory(t, "Laptops")

	mustCreateAsset(t, AssetInput{
		Name: "Mine", SerialNumber: "SN-1", Value: floatPtr(100),
		CategoryID: &category.ID, Status: StatusInUse, UserID: uintPtr(7),
	})
	mustCreateAsset(t, AssetInput{
		Name: "Someone else's", SerialNumber: "SN-2", Value: floatPtr(50),
		CategoryID: &category.ID, Status: StatusInUse, UserID: uintPtr(8),
	})

	stats, err := GetDashboardStats(ctx, uintPtr(7))
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.AssetCount != 1 || stats.TotalValue != 100 {
		t.Errorf("scoped stats = count %d value %v, want 1/100", stats.AssetCount, stats.TotalValue)
	}
	if stats.TopAssetName != "Mine" {
		t.Errorf("top_asset_name = %q, want Mine", stats.TopAssetName)
	}
}
