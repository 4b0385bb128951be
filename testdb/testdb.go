// Package testdb opens throwaway SQLite databases for controller tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakshit9/WDM-ecom/models"
)

var dbSeq atomic.Uint64

// Open returns a migrated in-memory database unique to the calling test.
// The shared-cache DSN plus a single connection keeps concurrent
// transactions in the same database while serializing writes, which is
// how SQLite wants to be driven anyway.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Product{},
		&models.CheckoutItem{},
		&models.Order{},
		&models.Rating{},
		&models.Favorite{},
		&models.ChatMessage{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
