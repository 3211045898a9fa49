package models

import "inventory-server/db"

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Category{})
	db.Instance.AutoMigrate(&Asset{})
}
