package models

import (
	"context"
	"strings"

	"inventory-server/db"

	"gorm.io/gorm"
)

type Category struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);index:uniq_category_name,unique;not null" json:"name"`
}

func CategoryList(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	if err := db.Instance.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return categories, nil
}

// categoryNameTaken does a case-insensitive uniqueness check. excludeID
// skips the category's own row on rename.
func categoryNameTaken(tx *gorm.DB, name string, excludeID uint64) (bool, error) {
	var count int64
	err := tx.Model(&Category{}).
		Where("LOWER(name) = ? AND id != ?", strings.ToLower(name), excludeID).
		Count(&count).Error
	return count > 0, err
}

func CategoryCreate(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "category name is required"}
	}
	tx := db.Instance.WithContext(ctx)
	taken, err := categoryNameTaken(tx, name, 0)
	if err != nil {
		return nil, decodeStoreError(err, "")
	}
	if taken {
		return nil, &ConflictError{Message: "category " + name + " already exists"}
	}
	category := Category{Name: name}
	if err := tx.Create(&category).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &category, nil
}

func CategoryRename(ctx context.Context, id uint64, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "category name is required"}
	}
	tx := db.Instance.WithContext(ctx)
	category := Category{}
	if err := tx.First(&category, id).Error; err != nil {
		return nil, decodeStoreError(err, "category not found")
	}
	taken, err := categoryNameTaken(tx, name, id)
	if err != nil {
		return nil, decodeStoreError(err, "")
	}
	if taken {
		return nil, &ConflictError{Message: "category " + name + " already exists"}
	}
	category.Name = name
	if err := tx.Save(&category).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &category, nil
}

// CategoryDelete unlinks every asset referencing the category and removes
// the category row, all inside one transaction. Either both steps are
// persisted or neither is, with no observable "unlinked but still existing"
// intermediate state.
func CategoryDelete(ctx context.Context, id uint64) (*Category, error) {
	deleted := Category{}
	err := db.Instance.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return decodeStoreError(err, "category not found")
		}
		if err := tx.Model(&Asset{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return decodeStoreError(err, "")
		}
		return decodeStoreError(tx.Delete(&Category{}, id).Error, "")
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
