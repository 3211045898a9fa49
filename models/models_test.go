package models

import (
	"context"
	"testing"

	"inventory-server/db"
)

func newTestDB(t *testing.T) {
	t.Helper()
	db.NewTestDB(t)
	Init()
}

func uintPtr(v uint64) *uint64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func mustCreateCategory(t *testing.T, name string) *Category {
	t.Helper()
	category, err := CategoryCreate(context.Background(), name)
	if err != nil {
		t.Fatalf("CategoryCreate(%q): %v", name, err)
	}
	return category
}

func mustCreateAsset(t *testing.T, in AssetInput) *Asset {
	t.Helper()
	if in.Value == nil {
		in.Value = floatPtr(100)
	}
	asset, err := AssetCreate(context.Background(), in)
	if err != nil {
		t.Fatalf("AssetCreate(%q): %v", in.Name, err)
	}
	return asset
}
