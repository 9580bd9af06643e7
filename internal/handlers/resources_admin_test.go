package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"herbarium/models"
)

func TestAdminListRendersRows(t *testing.T) {
	router, database := newTestServer(t)
	seedPlant(t, database, 1, "Matricaria chamomilla")

	req := httptest.NewRequest(http.MethodGet, "/admin/plants", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "Matricaria chamomilla") {
		t.Fatal("expected the plant row to be rendered")
	}
}

func TestAdminCreatePersistsAndRedirects(t *testing.T) {
	router, database := newTestServer(t)

	data := url.Values{}
	data.Set("botanicalName", "Calendula officinalis")
	data.Set("commonName", "Pot Marigold")
	data.Set("edible", "on")
	req := httptest.NewRequest(http.MethodPost, "/admin/plants/new", strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d: %s", rr.Code, rr.Body.String())
	}
	if location := rr.Header().Get("Location"); location != "/admin/plants" {
		t.Fatalf("expected redirect to /admin/plants, got %q", location)
	}

	var plant models.Plant
	if err := database.Where("botanical_name = ?", "Calendula officinalis").First(&plant).Error; err != nil {
		t.Fatalf("expected the plant to be persisted: %v", err)
	}
	if plant.CommonName != "Pot Marigold" || !plant.Edible {
		t.Fatalf("unexpected persisted plant: %+v", plant)
	}
}

func TestAdminCreateValidationKeepsSubmittedValues(t *testing.T) {
	router, _ := newTestServer(t)

	data := url.Values{}
	data.Set("commonName", "Mystery Herb")
	req := httptest.NewRequest(http.MethodPost, "/admin/plants/new", strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected the form to re-render with status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Botanical name is required") {
		t.Fatalf("expected a validation message, got: %s", body)
	}
	if !strings.Contains(body, "Mystery Herb") {
		t.Fatal("expected the submitted common name to be preserved")
	}
}

func TestAdminEditUpdatesRow(t *testing.T) {
	router, database := newTestServer(t)
	plant := seedPlant(t, database, 1, "Matricaria chamomilla")

	data := url.Values{}
	data.Set("botanicalName", "Matricaria chamomilla")
	data.Set("commonName", "German Chamomile")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/plants/edit/%d", plant.ID), strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d: %s", rr.Code, rr.Body.String())
	}

	var reloaded models.Plant
	if err := database.First(&reloaded, plant.ID).Error; err != nil {
		t.Fatalf("failed to reload plant: %v", err)
	}
	if reloaded.CommonName != "German Chamomile" {
		t.Fatalf("expected the common name to update, got %q", reloaded.CommonName)
	}
}

func TestAdminDeleteRemovesRow(t *testing.T) {
	router, database := newTestServer(t)
	plant := seedPlant(t, database, 1, "Matricaria chamomilla")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/plants/delete/%d", plant.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}

	var count int64
	if err := database.Model(&models.Plant{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count plants: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected the plant to be removed, found %d rows", count)
	}
}

func TestAdminPlotDeleteGuardFlashesConflict(t *testing.T) {
	router, database := newTestServer(t)

	plot := models.GardenPlot{Name: "South Border"}
	if err := database.Create(&plot).Error; err != nil {
		t.Fatalf("failed to seed plot: %v", err)
	}
	bed := models.GardenBed{PlotID: plot.ID, Name: "Tea Herb Bed"}
	if err := database.Create(&bed).Error; err != nil {
		t.Fatalf("failed to seed bed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/plots/delete/%d", plot.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}

	var count int64
	if err := database.Model(&models.GardenPlot{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count plots: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected the plot to survive, found %d rows", count)
	}

	// the follow-up list request consumes the flash
	listReq := httptest.NewRequest(http.MethodGet, "/admin/plots", nil)
	for _, cookie := range rr.Result().Cookies() {
		listReq.AddCookie(cookie)
	}
	listRR := httptest.NewRecorder()
	router.ServeHTTP(listRR, listReq)
	if listRR.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", listRR.Code)
	}
	if !strings.Contains(listRR.Body.String(), "bed") {
		t.Fatal("expected the flash to explain the remaining beds")
	}
}

func TestAdminDetailShowsFieldValues(t *testing.T) {
	router, database := newTestServer(t)
	plant := seedPlant(t, database, 1, "Matricaria chamomilla")

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/admin/plants/%d", plant.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Matricaria chamomilla") {
		t.Fatal("expected the detail page to show the botanical name")
	}
}

func TestHomeRendersIndexAndUnknownPathIs404(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 for the index, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, label := range []string{"Plants", "Plantings", "Plots", "Treatments"} {
		if !strings.Contains(body, label) {
			t.Fatalf("expected the index to list %q", label)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}
