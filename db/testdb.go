package db

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// NewTestDB points Instance at a fresh in-memory SQLite database.
// The previous instance is restored when the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared-cache name per test so pooled connections see the same
	// database while tests stay isolated from each other
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	previous := Instance
	Instance = testDB
	t.Cleanup(func() { Instance = previous })

	return testDB
}
