package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	applog "herbarium/internal/log"
	"herbarium/models"
)

type companionPayload struct {
	PlantID   uint    `json:"plantId"`
	Quantity  int     `json:"quantity"`
	XPosition float64 `json:"xPosition"`
	YPosition float64 `json:"yPosition"`
	Notes     string  `json:"notes"`
}

type plantingCreateRequest struct {
	PlantID         uint                `json:"plantId"`
	PlotID          *uint               `json:"plotId"`
	BedID           *uint               `json:"bedId"`
	PlantingDate    string              `json:"plantingDate"`
	Method          string              `json:"method"`
	QuantityPlanted int                 `json:"quantityPlanted"`
	SpacingCm       float64             `json:"spacingCm"`
	DepthCm         float64             `json:"depthCm"`
	AreaSqm         float64             `json:"areaSqm"`
	Notes           string              `json:"notes"`
	CompanionPlants *[]companionPayload `json:"companionPlants"`
}

// plantingUpdateRequest distinguishes absent fields from zero values so a
// partial payload only touches what it names. A nil CompanionPlants means
// "leave the companion set alone"; an empty array clears it.
type plantingUpdateRequest struct {
	PlantID         *uint               `json:"plantId"`
	PlotID          *uint               `json:"plotId"`
	BedID           *uint               `json:"bedId"`
	PlantingDate    *string             `json:"plantingDate"`
	Method          *string             `json:"method"`
	QuantityPlanted *int                `json:"quantityPlanted"`
	SpacingCm       *float64            `json:"spacingCm"`
	DepthCm         *float64            `json:"depthCm"`
	AreaSqm         *float64            `json:"areaSqm"`
	Notes           *string             `json:"notes"`
	CompanionPlants *[]companionPayload `json:"companionPlants"`
}

type companionResponse struct {
	ID         uint      `json:"id"`
	PlantingID uint      `json:"plantingId"`
	PlantID    uint      `json:"plantId"`
	Quantity   int       `json:"quantity"`
	XPosition  float64   `json:"xPosition"`
	YPosition  float64   `json:"yPosition"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type plantingResponse struct {
	PlantingID      uint                `json:"plantingId"`
	PlantID         uint                `json:"plantId"`
	PlotID          *uint               `json:"plotId"`
	BedID           *uint               `json:"bedId"`
	PlantingDate    string              `json:"plantingDate"`
	Method          string              `json:"method"`
	QuantityPlanted int                 `json:"quantityPlanted"`
	SpacingCm       float64             `json:"spacingCm"`
	DepthCm         float64             `json:"depthCm"`
	AreaSqm         float64             `json:"areaSqm"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	CompanionPlants []companionResponse `json:"companionPlants"`
}

// PlantingAPI dispatches /api/garden/plantings and /api/garden/plantings/{id}.
// Every write goes through the Plantings repository so the planting and its
// companion rows move as one atomic unit.
func (h *Handlers) PlantingAPI(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/garden/plantings"), "/")

	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			h.listPlantings(w, r)
		case http.MethodPost:
			h.createPlanting(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id, ok := parseID(rest)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "planting identifier must be numeric")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getPlanting(w, r, id)
	case http.MethodPut:
		h.updatePlanting(w, r, id)
	case http.MethodDelete:
		h.deletePlanting(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) listPlantings(w http.ResponseWriter, r *http.Request) {
	plantings, err := h.plantings.List(r.Context())
	if err != nil {
		writeRepositoryError(w, r, err, "unable to load plantings")
		return
	}

	responses := make([]plantingResponse, 0, len(plantings))
	for i := range plantings {
		responses = append(responses, projectPlanting(&plantings[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) getPlanting(w http.ResponseWriter, r *http.Request, id uint) {
	planting, err := h.plantings.Get(r.Context(), id)
	if err != nil {
		writeRepositoryError(w, r, err, "unable to load planting")
		return
	}
	writeJSON(w, http.StatusOK, projectPlanting(planting))
}

func (h *Handlers) createPlanting(w http.ResponseWriter, r *http.Request) {
	var payload plantingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.PlantID == 0 {
		writeJSONError(w, http.StatusBadRequest, "plantId is required")
		return
	}

	plantingDate, err := parsePlantingDate(payload.PlantingDate)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	companions, err := companionsFromPayload(payload.CompanionPlants)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	planting := models.Planting{
		PlantID:         payload.PlantID,
		PlotID:          payload.PlotID,
		BedID:           payload.BedID,
		PlantingDate:    plantingDate,
		Method:          payload.Method,
		QuantityPlanted: payload.QuantityPlanted,
		SpacingCm:       payload.SpacingCm,
		DepthCm:         payload.DepthCm,
		AreaSqm:         payload.AreaSqm,
		Notes:           payload.Notes,
	}

	created, err := h.plantings.Create(r.Context(), &planting, companions)
	if err != nil {
		writeRepositoryError(w, r, err, "unable to create planting")
		return
	}

	applog.Info(r.Context(), "planting created", "plantingId", created.ID, "companions", len(created.CompanionPlants))
	writeJSON(w, http.StatusCreated, projectPlanting(created))
}

func (h *Handlers) updatePlanting(w http.ResponseWriter, r *http.Request, id uint) {
	var payload plantingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	attrs := map[string]any{}
	if payload.PlantID != nil {
		if *payload.PlantID == 0 {
			writeJSONError(w, http.StatusBadRequest, "plantId must reference a plant")
			return
		}
		attrs["plant_id"] = *payload.PlantID
	}
	if payload.PlotID != nil {
		attrs["plot_id"] = *payload.PlotID
	}
	if payload.BedID != nil {
		attrs["bed_id"] = *payload.BedID
	}
	if payload.PlantingDate != nil {
		plantingDate, err := parsePlantingDate(*payload.PlantingDate)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		attrs["planting_date"] = plantingDate
	}
	if payload.Method != nil {
		attrs["method"] = *payload.Method
	}
	if payload.QuantityPlanted != nil {
		attrs["quantity_planted"] = *payload.QuantityPlanted
	}
	if payload.SpacingCm != nil {
		attrs["spacing_cm"] = *payload.SpacingCm
	}
	if payload.DepthCm != nil {
		attrs["depth_cm"] = *payload.DepthCm
	}
	if payload.AreaSqm != nil {
		attrs["area_sqm"] = *payload.AreaSqm
	}
	if payload.Notes != nil {
		attrs["notes"] = *payload.Notes
	}

	var companions *[]models.PlantingPlant
	if payload.CompanionPlants != nil {
		parsed, err := companionsFromPayload(payload.CompanionPlants)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		companions = &parsed
	}

	updated, err := h.plantings.Update(r.Context(), id, attrs, companions)
	if err != nil {
		writeRepositoryError(w, r, err, "unable to update planting")
		return
	}

	applog.Info(r.Context(), "planting updated", "plantingId", id)
	writeJSON(w, http.StatusOK, projectPlanting(updated))
}

func (h *Handlers) deletePlanting(w http.ResponseWriter, r *http.Request, id uint) {
	if err := h.plantings.Delete(r.Context(), id); err != nil {
		writeRepositoryError(w, r, err, "unable to delete planting")
		return
	}
	applog.Info(r.Context(), "planting deleted", "plantingId", id)
	w.WriteHeader(http.StatusNoContent)
}

// parsePlantingDate accepts a bare date or an RFC 3339 timestamp; an empty
// string leaves the date unset.
func parsePlantingDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse("2006-01-02", trimmed); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("plantingDate must be YYYY-MM-DD or RFC 3339")
}

func companionsFromPayload(payload *[]companionPayload) ([]models.PlantingPlant, error) {
	if payload == nil {
		return nil, nil
	}

	companions := make([]models.PlantingPlant, 0, len(*payload))
	for _, entry := range *payload {
		if entry.PlantID == 0 {
			return nil, fmt.Errorf("companionPlants entries require a plantId")
		}
		companions = append(companions, models.PlantingPlant{
			PlantID:   entry.PlantID,
			Quantity:  entry.Quantity,
			XPosition: entry.XPosition,
			YPosition: entry.YPosition,
			Notes:     entry.Notes,
		})
	}
	return companions, nil
}

func projectPlanting(planting *models.Planting) plantingResponse {
	companions := make([]companionResponse, 0, len(planting.CompanionPlants))
	for _, companion := range planting.CompanionPlants {
		companions = append(companions, companionResponse{
			ID:         companion.ID,
			PlantingID: companion.PlantingID,
			PlantID:    companion.PlantID,
			Quantity:   companion.Quantity,
			XPosition:  companion.XPosition,
			YPosition:  companion.YPosition,
			Notes:      companion.Notes,
			CreatedAt:  companion.CreatedAt,
			UpdatedAt:  companion.UpdatedAt,
		})
	}

	plantingDate := ""
	if !planting.PlantingDate.IsZero() {
		plantingDate = planting.PlantingDate.Format("2006-01-02")
	}

	return plantingResponse{
		PlantingID:      planting.ID,
		PlantID:         planting.PlantID,
		PlotID:          planting.PlotID,
		BedID:           planting.BedID,
		PlantingDate:    plantingDate,
		Method:          planting.Method,
		QuantityPlanted: planting.QuantityPlanted,
		SpacingCm:       planting.SpacingCm,
		DepthCm:         planting.DepthCm,
		AreaSqm:         planting.AreaSqm,
		Notes:           planting.Notes,
		CreatedAt:       planting.CreatedAt,
		UpdatedAt:       planting.UpdatedAt,
		CompanionPlants: companions,
	}
}
