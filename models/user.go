package models

import (
	"context"
	"errors"

	"inventory-server/db"
	"inventory-server/utils"

	"gorm.io/gorm"
)

const saltSize = 60

// User rows are owned by the account subsystem; the asset core only
// references them as assignees and reads them for listings.
type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"-"`
	UpdatedAt int64  `json:"-"`
	Name      string `gorm:"type:varchar(100)" json:"name"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique" json:"email"`
	Role      string `gorm:"type:varchar(20);default:user" json:"role"`
	Avatar    string `gorm:"type:varchar(500)" json:"avatar"`
	GoogleID  string `gorm:"type:varchar(100)" json:"-"`
	Password  string `gorm:"type:varchar(128)" json:"-"`
	PassSalt  string `gorm:"type:varchar(200)" json:"-"`
}

// Identity is what the external identity provider yields for a verified
// token. The core trusts it to find or create the matching User row.
type Identity struct {
	Email   string
	Name    string
	Picture string
	Subject string
}

func UserCreate(ctx context.Context, name, email, plainTextPassword string) (*User, error) {
	user := User{
		Name:     name,
		Email:    email,
		PassSalt: utils.RandSalt(saltSize),
	}
	user.Password = utils.Sha512String(plainTextPassword + user.PassSalt)
	if err := db.Instance.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &user, nil
}

func UserLogin(ctx context.Context, email, plainTextPassword string) (*User, bool) {
	user := User{}
	if err := db.Instance.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, false
	}
	if user.Password != utils.Sha512String(plainTextPassword+user.PassSalt) {
		return nil, false
	}
	return &user, true
}

// UserFindOrCreateFromIdentity looks a user up by email, creating the row
// on first login with the provider-supplied profile fields.
func UserFindOrCreateFromIdentity(ctx context.Context, identity *Identity) (*User, error) {
	user := User{}
	err := db.Instance.WithContext(ctx).First(&user, "email = ?", identity.Email).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, decodeStoreError(err, "")
	}
	user = User{
		Name:     identity.Name,
		Email:    identity.Email,
		Avatar:   identity.Picture,
		GoogleID: identity.Subject,
	}
	if err := db.Instance.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return &user, nil
}

func UserList(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := db.Instance.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, decodeStoreError(err, "")
	}
	return users, nil
}
