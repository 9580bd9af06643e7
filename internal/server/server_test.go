package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"herbarium/internal/config"
	"herbarium/internal/db"
	"herbarium/models"
)

func openServerDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), db.Options())
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

func TestNewRequiresDatabase(t *testing.T) {
	if _, err := New(Config{Addr: ":8080"}); err == nil {
		t.Fatal("expected error when database handle is missing")
	}
}

func TestNewAppliesSessionDefaults(t *testing.T) {
	database := openServerDatabase(t)
	if err := database.Create(&models.Plant{BotanicalName: "Salvia officinalis", CommonName: "Sage"}).Error; err != nil {
		t.Fatalf("failed to seed plant: %v", err)
	}

	cfg := Config{Addr: ":8080", Session: config.SessionConfig{CookieSecure: true}, Database: database}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if srv.httpServer.Addr != ":8080" {
		t.Fatalf("expected server addr :8080, got %q", srv.httpServer.Addr)
	}
	if srv.httpServer.Handler == nil {
		t.Fatal("expected handler to be configured")
	}

	data := url.Values{}
	data.Set("botanicalName", "Matricaria chamomilla")
	data.Set("commonName", "German Chamomile")
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/plants/new", strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after create, got %d", rr.Code)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie to be set")
	}
	if cookies[0].Name != "herbarium_session" {
		t.Fatalf("expected default session cookie name, got %q", cookies[0].Name)
	}
	if !cookies[0].Secure {
		t.Fatal("expected cookie secure flag to be true")
	}
}

func TestServerHandler(t *testing.T) {
	database := openServerDatabase(t)
	srv, err := New(Config{Addr: ":9090", Database: database})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	handler := srv.Handler()
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
}
