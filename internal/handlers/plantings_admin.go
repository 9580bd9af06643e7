package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"herbarium/internal/forms"
	"herbarium/internal/repository"
	"herbarium/internal/views/pages"
	"herbarium/models"
)

const plantingAdminPath = "/admin/garden/plantings"

func plantingFormFields() []forms.Field {
	return []forms.Field{
		{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
		{Name: "plotId", Label: "Plot", Kind: forms.KindRef},
		{Name: "bedId", Label: "Bed", Kind: forms.KindRef},
		{Name: "plantingDate", Label: "Planting date", Kind: forms.KindDate},
		{Name: "method", Label: "Method", Kind: forms.KindSelect, Options: []string{"Direct sow", "Transplant", "Division", "Cutting"}},
		{Name: "quantityPlanted", Label: "Quantity planted", Kind: forms.KindNumber},
		{Name: "spacingCm", Label: "Spacing (cm)", Kind: forms.KindDecimal},
		{Name: "depthCm", Label: "Depth (cm)", Kind: forms.KindDecimal},
		{Name: "areaSqm", Label: "Area (m²)", Kind: forms.KindDecimal},
		{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
	}
}

func (h *Handlers) plantingRefs(ctx context.Context) map[string][]pages.Option {
	refs := h.plantRefOptions(ctx, "plantId")
	if refs == nil {
		refs = map[string][]pages.Option{}
	}
	refs["plotId"] = h.plotRefOptions(ctx)
	refs["bedId"] = h.bedRefOptions(ctx)
	return refs
}

// PlantingAdmin dispatches the HTML admin routes for plantings. The form
// covers the planting attributes; companion plants are shown on the detail
// page and managed through the JSON API's replacement semantics.
func (h *Handlers) PlantingAdmin(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, plantingAdminPath), "/")

	switch {
	case rest == "":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.plantingAdminList(w, r)
	case rest == "new":
		switch r.Method {
		case http.MethodGet:
			h.plantingAdminForm(w, r, nil, nil, "")
		case http.MethodPost:
			h.plantingAdminCreate(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case strings.HasPrefix(rest, "edit/"):
		id, ok := parseID(strings.TrimPrefix(rest, "edit/"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.plantingAdminEditForm(w, r, id)
		case http.MethodPost:
			h.plantingAdminUpdate(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case strings.HasPrefix(rest, "delete/"):
		id, ok := parseID(strings.TrimPrefix(rest, "delete/"))
		if !ok || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		h.plantingAdminDelete(w, r, id)
	default:
		id, ok := parseID(rest)
		if !ok || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		h.plantingAdminDetail(w, r, id)
	}
}

func (h *Handlers) plantingAdminList(w http.ResponseWriter, r *http.Request) {
	plantings, err := h.plantings.List(r.Context())
	if err != nil {
		http.Error(w, "unable to load plantings", http.StatusInternalServerError)
		return
	}

	rows := make([]pages.Row, 0, len(plantings))
	for _, planting := range plantings {
		rows = append(rows, pages.Row{
			ID: planting.ID,
			Cells: []string{
				pages.FormatDate(planting.PlantingDate),
				plantCell(planting.Plant),
				planting.Method,
				pages.FormatQuantity(planting.QuantityPlanted),
				pages.FormatQuantity(len(planting.CompanionPlants)),
			},
		})
	}

	content := pages.ResourceList("Plantings", plantingAdminPath, []string{"Date", "Plant", "Method", "Quantity", "Companions"}, rows)
	h.renderPage(w, r, "Plantings", content)
}

func (h *Handlers) plantingAdminDetail(w http.ResponseWriter, r *http.Request, id uint) {
	planting, err := h.plantings.Get(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	plotName := ""
	if planting.Plot != nil {
		plotName = planting.Plot.Name
	}
	bedName := ""
	if planting.Bed != nil {
		bedName = planting.Bed.Name
	}

	pairs := [][2]string{
		{"Plant", plantCell(planting.Plant)},
		{"Plot", plotName},
		{"Bed", bedName},
		{"Planting date", pages.FormatDate(planting.PlantingDate)},
		{"Method", planting.Method},
		{"Quantity planted", pages.FormatQuantity(planting.QuantityPlanted)},
		{"Spacing", pages.FormatMeasure(planting.SpacingCm, "cm")},
		{"Depth", pages.FormatMeasure(planting.DepthCm, "cm")},
		{"Area", pages.FormatMeasure(planting.AreaSqm, "m²")},
		{"Notes", planting.Notes},
	}

	content := pages.ResourceDetail("Planting", plantingAdminPath, id, pairs, pages.CompanionTable(planting.CompanionPlants))
	h.renderPage(w, r, "Planting", content)
}

func (h *Handlers) plantingAdminForm(w http.ResponseWriter, r *http.Request, planting *models.Planting, values map[string]string, errMsg string) {
	fields := plantingFormFields()
	action := plantingAdminPath + "/new"
	title := "New planting"
	if planting != nil {
		action = plantingAdminPath + "/edit/" + itoa(planting.ID)
		title = "Edit planting"
	}
	if values == nil {
		if planting != nil {
			values = forms.Values(fields, planting)
		} else {
			values = map[string]string{}
		}
	}

	content := pages.ResourceForm(title, action, fields, values, errMsg, h.plantingRefs(r.Context()))
	h.renderPage(w, r, title, content)
}

func (h *Handlers) plantingAdminCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	var planting models.Planting
	if err := forms.Bind(r.PostForm, plantingFormFields(), &planting); err != nil {
		h.plantingAdminForm(w, r, nil, submittedValues(r, plantingFormFields()), err.Error())
		return
	}

	if _, err := h.plantings.Create(r.Context(), &planting, nil); err != nil {
		h.plantingAdminForm(w, r, nil, submittedValues(r, plantingFormFields()), "Unable to save the planting.")
		return
	}

	h.putFlash(r.Context(), "Created the planting.")
	http.Redirect(w, r, plantingAdminPath, http.StatusSeeOther)
}

func (h *Handlers) plantingAdminEditForm(w http.ResponseWriter, r *http.Request, id uint) {
	planting, err := h.plantings.Get(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.plantingAdminForm(w, r, planting, nil, "")
}

func (h *Handlers) plantingAdminUpdate(w http.ResponseWriter, r *http.Request, id uint) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	editing := models.Planting{}
	editing.ID = id

	var bound models.Planting
	if err := forms.Bind(r.PostForm, plantingFormFields(), &bound); err != nil {
		h.plantingAdminForm(w, r, &editing, submittedValues(r, plantingFormFields()), err.Error())
		return
	}

	attrs := map[string]any{
		"plant_id":         bound.PlantID,
		"plot_id":          bound.PlotID,
		"bed_id":           bound.BedID,
		"planting_date":    bound.PlantingDate,
		"method":           bound.Method,
		"quantity_planted": bound.QuantityPlanted,
		"spacing_cm":       bound.SpacingCm,
		"depth_cm":         bound.DepthCm,
		"area_sqm":         bound.AreaSqm,
		"notes":            bound.Notes,
	}

	if _, err := h.plantings.Update(r.Context(), id, attrs, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.plantingAdminForm(w, r, &editing, submittedValues(r, plantingFormFields()), "Unable to save the planting.")
		return
	}

	h.putFlash(r.Context(), "Updated the planting.")
	http.Redirect(w, r, plantingAdminPath, http.StatusSeeOther)
}

func (h *Handlers) plantingAdminDelete(w http.ResponseWriter, r *http.Request, id uint) {
	if err := h.plantings.Delete(r.Context(), id); err != nil {
		h.putFlash(r.Context(), "Unable to delete the planting.")
	} else {
		h.putFlash(r.Context(), "Deleted the planting.")
	}
	http.Redirect(w, r, plantingAdminPath, http.StatusSeeOther)
}
