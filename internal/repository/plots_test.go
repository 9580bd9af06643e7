package repository

import (
	"context"
	"errors"
	"testing"

	"herbarium/models"
)

func TestPlotsDeleteRefusedWhileBedsExist(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewPlots(database)

	plot := models.GardenPlot{Name: "South Border"}
	if err := database.Create(&plot).Error; err != nil {
		t.Fatalf("failed to seed plot: %v", err)
	}
	bed := models.GardenBed{PlotID: plot.ID, Name: "Tea Herb Bed"}
	if err := database.Create(&bed).Error; err != nil {
		t.Fatalf("failed to seed bed: %v", err)
	}

	err := repo.Delete(context.Background(), plot.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Delete() error = %v, want ErrConflict", err)
	}

	if got := countRows(t, database, &models.GardenPlot{}); got != 1 {
		t.Fatalf("expected plot preserved, count = %d", got)
	}
	if got := countRows(t, database, &models.GardenBed{}); got != 1 {
		t.Fatalf("expected bed preserved, count = %d", got)
	}
}

func TestPlotsDeleteSucceedsWithoutBeds(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewPlots(database)

	plot := models.GardenPlot{Name: "North Corner"}
	if err := database.Create(&plot).Error; err != nil {
		t.Fatalf("failed to seed plot: %v", err)
	}

	if err := repo.Delete(context.Background(), plot.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := countRows(t, database, &models.GardenPlot{}); got != 0 {
		t.Fatalf("expected plot removed, count = %d", got)
	}
}

func TestPlotsDeleteSucceedsAfterBedsRemoved(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewPlots(database)

	plot := models.GardenPlot{Name: "East Slope"}
	if err := database.Create(&plot).Error; err != nil {
		t.Fatalf("failed to seed plot: %v", err)
	}
	bed := models.GardenBed{PlotID: plot.ID, Name: "Cutting Bed"}
	if err := database.Create(&bed).Error; err != nil {
		t.Fatalf("failed to seed bed: %v", err)
	}

	if err := database.Delete(&bed).Error; err != nil {
		t.Fatalf("failed to remove bed: %v", err)
	}
	if err := repo.Delete(context.Background(), plot.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
