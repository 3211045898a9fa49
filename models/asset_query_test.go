package models

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"inventory-server/db"
)

func TestParseAssetListOptionsDefaults(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"empty", "", 1, 10},
		{"valid", "page=3&limit=5", 3, 5},
		{"non-numeric", "page=abc&limit=xyz", 1, 10},
		{"zero", "page=0&limit=0", 1, 10},
		{"negative", "page=-2&limit=-5", 1, 10},
		{"fractional", "page=1.5&limit=2.5", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			opts := ParseAssetListOptions(values)
			if opts.Page != tt.wantPage || opts.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					opts.Page, opts.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffsetArithmetic(t *testing.T) {
	for _, page := range []int{1, 2, 3} {
		for _, limit := range []int{1, 5, 10} {
			opts := AssetListOptions{Page: page, Limit: limit}
			want := (page - 1) * limit
			if got := opts.Offset(); got != want {
				t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", page, limit, got, want)
			}
		}
	}
}

func TestAssetListSearch(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()
	category := mustCreateCategory(t, "Laptops")

	mustCreateAsset(t, AssetInput{Name: "MacBook Pro", SerialNumber: "SN-1", CategoryID: &category.ID})
	mustCreateAsset(t, AssetInput{Name: "Thinkpad", SerialNumber: "SN-MAC-01", CategoryID: &category.ID})
	mustCreateAsset(t, AssetInput{Name: "Projector", SerialNumber: "SN-3", CategoryID: &category.ID})

	assets, total, err := AssetList(ctx, AssetListOptions{Search: "mac", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("AssetList: %v", err)
	}
	if total != 2 || len(assets) != 2 {
		t.Fatalf("search 'mac': got total=%d count=%d, want 2/2", total, len(assets))
	}
	for _, a := range assets {
		if a.Name == "Projector" {
			t.Error("search 'mac' should not match Projector")
		}
	}

	// Empty and whitespace-only search are ignored, not "match nothing"
	for _, search := range []string{"", "   "} {
		_, total, err = AssetList(ctx, AssetListOptions{Search: search, Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("AssetList: %v", err)
		}
		if total != 3 {
			t.Errorf("search %q: got total=%d, want the unfiltered 3", search, total)
		}
	}
}

func TestAssetListFilters(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()
	laptops := mustCreateCategory(t, "Laptops")
	phones := mustCreateCategory(t, "Phones")

	mustCreateAsset(t, AssetInput{Name: "MacBook", SerialNumber: "SN-1", CategoryID: &laptops.ID})
	mustCreateAsset(t, AssetInput{
		Name: "iPhone", SerialNumber: "SN-2", CategoryID: &phones.ID,
		Status: StatusInUse, UserID: uintPtr(7),
	})
	mustCreateAsset(t, AssetInput{
		Name: "Pixel", SerialNumber: "SN-3", CategoryID: &phones.ID,
		Status: StatusMaintenance,
	})

	tests := []struct {
		name string
		opts AssetListOptions
		want int64
	}{
		{"by category", AssetListOptions{CategoryID: fmt.Sprint(phones.ID)}, 2},
		{"category sentinel undefined", AssetListOptions{CategoryID: "undefined"}, 3},
		{"by status", AssetListOptions{Status: StatusInUse}, 1},
		{"status sentinel all", AssetListOptions{Status: "all"}, 3},
		{"status sentinel undefined", AssetListOptions{Status: "undefined"}, 3},
		{"by user", AssetListOptions{UserID: uintPtr(7)}, 1},
		{"combined AND", AssetListOptions{CategoryID: fmt.Sprint(phones.ID), Status: StatusMaintenance}, 1},
		{"combined AND no match", AssetListOptions{CategoryID: fmt.Sprint(laptops.ID), Status: StatusMaintenance}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Page = 1
			tt.opts.Limit = 10
			assets, total, err := AssetList(ctx, tt.opts)
			if err != nil {
				t.Fatalf("AssetList: %v", err)
			}
			if total != tt.want {
				t.Errorf("got total=%d, want %d", total, tt.want)
			}
			if int64(len(assets)) != tt.want {
				t.Errorf("got count=%d, want %d (total fits in one page)", len(assets), tt.want)
			}
		})
	}
}

func TestAssetListPagination(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()
	category := mustCreateCategory(t, "Misc")

	for i := 0; i < 7; i++ {
		mustCreateAsset(t, AssetInput{
			Name:         fmt.Sprintf("Item %d", i),
			SerialNumber: fmt.Sprintf("SN-%d", i),
			CategoryID:   &category.ID,
		})
	}

	page1, total, err := AssetList(ctx, AssetListOptions{Page: 1, Limit: 5})
	if err != nil {
		t.Fatalf("AssetList: %v", err)
	}
	if total != 7 {
		t.Errorf("got total=%d, want 7", total)
	}
	if len(page1) != 5 {
		t.Errorf("non-final page: got %d rows, want the full limit of 5", len(page1))
	}

	page2, _, err := AssetList(ctx, AssetListOptions{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("AssetList: %v", err)
	}
	if len(page2) != 2 {
		t.Errorf("final page: got %d rows, want 2", len(page2))
	}

	// No overlap between pages
	seen := map[uint64]bool{}
	for _, a := range append(page1, page2...) {
		if seen[a.ID] {
			t.Errorf("asset %d appears on two pages", a.ID)
		}
		seen[a.ID] = true
	}

	empty, _, err := AssetList(ctx, AssetListOptions{Page: 3, Limit: 5})
	if err != nil {
		t.Fatalf("AssetList: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("past-the-end page: got %d rows, want 0", len(empty))
	}
}

func TestAssetListOrder(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()
	category := mustCreateCategory(t, "Misc")

	// Force distinct creation times, oldest first
	for i, name := range []string{"oldest", "middle", "newest"} {
		asset := mustCreateAsset(t, AssetInput{
			Name:         name,
			SerialNumber: "SN-ORD-" + name,
			CategoryID:   &category.ID,
		})
		db.Instance.Model(&Asset{}).Where("id = ?", asset.ID).Update("created_at", 1000+i)
	}

	assets, _, err := AssetList(ctx, AssetListOptions{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("AssetList: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	for i, name := range want {
		if assets[i].Name != name {
			t.Errorf("position %d: got %q, want %q (most recently created first)", i, assets[i].Name, name)
		}
	}
}
