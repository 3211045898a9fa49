package models

import (
	"context"
	"time"

	"inventory-server/db"
)

const (
	StatusAvailable   = "available"
	StatusInUse       = "in-use"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"
)

type Asset struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(200);not null" json:"name"`
	SerialNumber string `gorm:"type:varchar(100);index:uniq_serial_number,unique;not null" json:"serial_number"`
	Status       string `gorm:"type:varchar(20);not null;default:available" json:"status"`
	// Stored as decimal(12,2); float64 is fine for the two-decimal values we carry
	Value        float64   `gorm:"type:decimal(12,2)" json:"value"`
	PurchaseDate string    `gorm:"type:varchar(10)" json:"purchase_date"`
	CategoryID   *uint64   `gorm:"index" json:"category_id"`
	Category     *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	UserID       *uint64   `gorm:"index" json:"user_id"`
	User         *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	// Opaque handle pair for the externally stored image. The asset owns it:
	// the remote object is deleted when the asset goes away or the image is replaced.
	ImageURL      *string `gorm:"type:varchar(2000)" json:"image_url"`
	ImagePublicID *string `gorm:"type:varchar(300)" json:"image_public_id"`
	CreatedAt     int64   `gorm:"index;autoCreateTime" json:"created_at"`
}

type AssetInput struct {
	Name          string   `json:"name" binding:"required"`
	SerialNumber  string   `json:"serial_number" binding:"required"`
	Status        string   `json:"status"`
	Value         *float64 `json:"value" binding:"required"`
	PurchaseDate  string   `json:"purchase_date"`
	CategoryID    *uint64  `json:"category_id" binding:"required"`
	UserID        *uint64  `json:"user_id"`
	ImageURL      *string  `json:"image_url"`
	ImagePublicID *string  `json:"image_public_id"`
}

// ValidateAssignment enforces the status/assignee invariant: an asset has
// an assignee exactly when its status is in-use. Called by create and full
// update. The status-only patch path deliberately skips it (quick toggles).
func ValidateAssignment(status string, userID *uint64) error {
	switch status {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusRetired:
	default:
		return &ValidationError{Message: "invalid status: " + status}
	}
	if status == StatusInUse && userID == nil {
		return &ValidationError{Message: "in-use requires an assignee"}
	}
	if status != StatusInUse && userID != nil {
		return &ValidationError{Message: "status " + status + " cannot carry an assignee"}
	}
	return nil
}

func (in *AssetInput) validate() error {
	if in.Name == "" || in.SerialNumber == "" {
		return &ValidationError{Message: "name and serial_number are required"}
	}
	if in.CategoryID == nil {
		return &ValidationError{Message: "category_id is required"}
	}
	if in.Value == nil {
		return &ValidationError{Message: "value is required"}
	}
	if *in.Value < 0 {
		return &ValidationError{Message: "value cannot be negative"}
	}
	if in.Status == "" {
		in.Status = StatusAvailable
	}
	return ValidateAssignment(in.Status, in.UserID)
}

func AssetGet(ctx context.Context, id uint64) (*Asset, error) {
	asset := Asset{}
	if err := db.Instance.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, decodeStoreError(err, "asset not found")
	}
	return &asset, nil
}

func AssetCreate(ctx context.Context, in AssetInput) (*Asset, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	asset := Asset{
		Name:          in.Name,
		SerialNumber:  in.SerialNumber,
		Status:        in.Status,
		Value:         *in.Value,
		PurchaseDate:  in.PurchaseDate,
		CategoryID:    in.CategoryID,
		UserID:        in.UserID,
		ImageURL:      in.ImageURL,
		ImagePublicID: in.ImagePublicID,
		CreatedAt:     time.Now().Unix(),
	}
	if err := db.Instance.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &asset, nil
}

// AssetUpdate replaces all caller-editable fields. It re-validates the
// invariant against the submitted payload, never against prior state.
// The returned string is the public id of an image handle that was
// superseded by this update, "" when nothing was replaced; the caller
// is responsible for the best-effort remote deletion.
func AssetUpdate(ctx context.Context, id uint64, in AssetInput) (*Asset, string, error) {
	if err := in.validate(); err != nil {
		return nil, "", err
	}
	asset := Asset{}
	if err := db.Instance.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, "", decodeStoreError(err, "asset not found")
	}
	replaced := ""
	if asset.ImagePublicID != nil &&
		(in.ImagePublicID == nil || *in.ImagePublicID != *asset.ImagePublicID) {
		replaced = *asset.ImagePublicID
	}
	asset.Name = in.Name
	asset.SerialNumber = in.SerialNumber
	asset.Status = in.Status
	asset.Value = *in.Value
	asset.PurchaseDate = in.PurchaseDate
	asset.CategoryID = in.CategoryID
	asset.UserID = in.UserID
	asset.ImageURL = in.ImageURL
	asset.ImagePublicID = in.ImagePublicID
	if err := db.Instance.WithContext(ctx).Save(&asset).Error; err != nil {
		return nil, "", decodeStoreError(err, "asset not found")
	}
	return &asset, replaced, nil
}

// AssetUpdateStatus patches only the status column. It checks the status
// value itself but does not re-validate the assignee invariant: the
// toggle path trusts its caller.
// Existence is established by the read, never by affected-row counts:
// MySQL reports 0 affected rows for a same-value update, and patching an
// asset to its current status is a valid no-op.
func AssetUpdateStatus(ctx context.Context, id uint64, status string) (*Asset, error) {
	switch status {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusRetired:
	default:
		return nil, &ValidationError{Message: "invalid status: " + status}
	}
	asset := Asset{}
	if err := db.Instance.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, decodeStoreError(err, "asset not found")
	}
	if err := db.Instance.WithContext(ctx).Model(&asset).Update("status", status).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &asset, nil
}

// AssetDelete removes the row and returns the image public id that the
// caller should target for remote deletion (best-effort, row is already
// authoritative-deleted by then). The delete's own row count decides the
// outcome, so concurrent deletes of the same id cannot both claim the
// row or its image.
func AssetDelete(ctx context.Context, id uint64) (string, error) {
	asset := Asset{}
	if err := db.Instance.WithContext(ctx).First(&asset, id).Error; err != nil {
		return "", decodeStoreError(err, "asset not found")
	}
	result := db.Instance.WithContext(ctx).Delete(&Asset{}, id)
	if result.Error != nil {
		return "", decodeStoreError(result.Error, "asset not found")
	}
	if result.RowsAffected == 0 {
		return "", &NotFoundError{Message: "asset not found"}
	}
	if asset.ImagePublicID == nil {
		return "", nil
	}
	return *asset.ImagePublicID, nil
}
