package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"herbarium/internal/db"
	"herbarium/models"
)

func openHandlerDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), db.Options())
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(database); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return database
}

func newTestHandlers(t *testing.T) (*Handlers, *gorm.DB) {
	t.Helper()
	database := openHandlerDatabase(t)
	return New(database, scs.New()), database
}

// newTestServer wires the full route table behind the session middleware, the
// same shape the server package assembles in production.
func newTestServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	database := openHandlerDatabase(t)
	sessions := scs.New()
	h := New(database, sessions)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.HandleFunc("/", h.Home)
	return sessions.LoadAndSave(mux), database
}

func seedPlant(t *testing.T, database *gorm.DB, id uint, botanicalName string) models.Plant {
	t.Helper()
	plant := models.Plant{BotanicalName: botanicalName}
	plant.ID = id
	if err := database.Create(&plant).Error; err != nil {
		t.Fatalf("failed to seed plant %q: %v", botanicalName, err)
	}
	return plant
}
