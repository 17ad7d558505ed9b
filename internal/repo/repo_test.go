package repo

import (
	"Lookbook/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB initializes an in-memory SQLite (modernc.org/sqlite) for
// repository tests. The DB is named after the test so tests do not share
// state through the pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// migrations for every model the repositories touch
	if err := db.AutoMigrate(&model.User{}, &model.WardrobeItem{}, &model.InspirationPost{}, &model.PlannedOutfit{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
