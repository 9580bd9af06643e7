package handlers

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	applog "herbarium/internal/log"
	"herbarium/models"
)

var plantExportHeader = []string{
	"Botanical Name", "Common Name", "Family", "Genus", "Species",
	"Hardiness Zone", "Light Needs", "Soil Needs", "Water Needs",
	"Edible", "Medicinal",
}

// ExportPlants streams the plant catalog as an XLSX workbook.
func (h *Handlers) ExportPlants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var plants []models.Plant
	if err := h.db.WithContext(r.Context()).Order("botanical_name asc").Find(&plants).Error; err != nil {
		applog.Error(r.Context(), "failed to load plants for export", "error", err)
		http.Error(w, "unable to export plants", http.StatusInternalServerError)
		return
	}

	workbook := excelize.NewFile()
	defer func() {
		if err := workbook.Close(); err != nil {
			applog.Error(r.Context(), "failed to close export workbook", "error", err)
		}
	}()

	const sheet = "Plants"
	if err := workbook.SetSheetName("Sheet1", sheet); err != nil {
		applog.Error(r.Context(), "failed to rename export sheet", "error", err)
		http.Error(w, "unable to export plants", http.StatusInternalServerError)
		return
	}

	for col, title := range plantExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			http.Error(w, "unable to export plants", http.StatusInternalServerError)
			return
		}
		if err := workbook.SetCellValue(sheet, cell, title); err != nil {
			http.Error(w, "unable to export plants", http.StatusInternalServerError)
			return
		}
	}

	for rowIdx, plant := range plants {
		values := []any{
			plant.BotanicalName, plant.CommonName, plant.Family, plant.Genus, plant.Species,
			plant.HardinessZone, plant.LightNeeds, plant.SoilNeeds, plant.WaterNeeds,
			yesNo(plant.Edible), yesNo(plant.MedicinalUse),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				http.Error(w, "unable to export plants", http.StatusInternalServerError)
				return
			}
			if err := workbook.SetCellValue(sheet, cell, value); err != nil {
				http.Error(w, "unable to export plants", http.StatusInternalServerError)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "plants.xlsx"))
	if err := workbook.Write(w); err != nil {
		applog.Error(r.Context(), "failed to write export workbook", "error", err)
	}
	applog.Info(r.Context(), "plant catalog exported", "rows", len(plants))
}
