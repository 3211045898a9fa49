package db

import (
	"inventory-server/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var err error
	var db *gorm.DB
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), &gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
		})
	} else if config.SQLITE_FILE != "" {
		db, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), &gorm.Config{
			SkipDefaultTransaction: true,
		})
	} else {
		panic("neither MYSQL_DSN nor SQLITE_FILE is configured")
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
