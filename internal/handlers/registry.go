package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"herbarium/internal/forms"
	applog "herbarium/internal/log"
	"herbarium/internal/views/pages"
	"herbarium/models"
)

// resourceRoutes is the routing surface produced by one resource definition.
type resourceRoutes struct {
	label     string
	apiPath   string
	adminPath string
	api       http.HandlerFunc
	admin     http.HandlerFunc
	count     func(context.Context) int64
}

func routesFor[M any](h *Handlers, def Definition[M]) resourceRoutes {
	res := NewResource(h, def)
	return resourceRoutes{
		label:     def.Title,
		apiPath:   res.apiPath(),
		adminPath: res.adminPath(),
		api:       res.ServeAPI,
		admin:     res.ServeAdmin,
		count:     res.count,
	}
}

// RegisterRoutes mounts every resource family plus the planting routes onto
// the mux. The server wires health, home and static assets separately.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	for _, routes := range h.resourceRoutes() {
		mux.HandleFunc(routes.apiPath, routes.api)
		mux.HandleFunc(routes.apiPath+"/", routes.api)
		mux.HandleFunc(routes.adminPath, routes.admin)
		mux.HandleFunc(routes.adminPath+"/", routes.admin)
		applog.Debug(context.Background(), "resource routes registered", "resource", routes.label)
	}

	mux.HandleFunc("/api/garden/plantings", h.PlantingAPI)
	mux.HandleFunc("/api/garden/plantings/", h.PlantingAPI)
	mux.HandleFunc("/admin/garden/plantings", h.PlantingAdmin)
	mux.HandleFunc("/admin/garden/plantings/", h.PlantingAdmin)
	mux.HandleFunc("/admin/plants/export", h.ExportPlants)
	applog.Debug(context.Background(), "planting and export routes registered")
}

// indexEntries backs the admin landing page with per-resource counts.
func (h *Handlers) indexEntries(ctx context.Context) []pages.IndexEntry {
	entries := make([]pages.IndexEntry, 0, 16)
	for _, routes := range h.resourceRoutes() {
		entries = append(entries, pages.IndexEntry{Label: routes.label, Href: routes.adminPath, Count: routes.count(ctx)})
	}

	var plantingCount int64
	if err := h.db.WithContext(ctx).Model(&models.Planting{}).Count(&plantingCount).Error; err != nil {
		applog.Error(ctx, "failed to count plantings", "error", err)
	}
	entries = append(entries, pages.IndexEntry{Label: "Plantings", Href: "/admin/garden/plantings", Count: plantingCount})
	return entries
}

func (h *Handlers) resourceRoutes() []resourceRoutes {
	return []resourceRoutes{
		routesFor(h, h.plantDefinition()),
		routesFor(h, h.plantPartDefinition()),
		routesFor(h, h.medicinalPropertyDefinition()),
		routesFor(h, h.westernPropertyDefinition()),
		routesFor(h, h.ayurvedicPropertyDefinition()),
		routesFor(h, h.tcmPropertyDefinition()),
		routesFor(h, h.herbalActionDefinition()),
		routesFor(h, h.culinaryUseDefinition()),
		routesFor(h, h.cutFlowerTraitDefinition()),
		routesFor(h, h.treatmentDefinition()),
		routesFor(h, h.seedSavingDefinition()),
		routesFor(h, h.plotDefinition()),
		routesFor(h, h.bedDefinition()),
		routesFor(h, h.cropRotationDefinition()),
	}
}

// plantRefOptions builds the dropdown of plants keyed by the given field.
func (h *Handlers) plantRefOptions(ctx context.Context, fieldNames ...string) map[string][]pages.Option {
	var plants []models.Plant
	if err := h.db.WithContext(ctx).Order("botanical_name asc").Find(&plants).Error; err != nil {
		applog.Error(ctx, "failed to load plant options", "error", err)
		return nil
	}

	options := make([]pages.Option, 0, len(plants))
	for _, plant := range plants {
		options = append(options, pages.Option{Value: itoa(plant.ID), Label: plant.BotanicalName})
	}

	refs := make(map[string][]pages.Option, len(fieldNames))
	for _, name := range fieldNames {
		refs[name] = options
	}
	return refs
}

func (h *Handlers) plotRefOptions(ctx context.Context) []pages.Option {
	var plots []models.GardenPlot
	if err := h.db.WithContext(ctx).Order("name asc").Find(&plots).Error; err != nil {
		applog.Error(ctx, "failed to load plot options", "error", err)
		return nil
	}
	options := make([]pages.Option, 0, len(plots))
	for _, plot := range plots {
		options = append(options, pages.Option{Value: itoa(plot.ID), Label: plot.Name})
	}
	return options
}

func (h *Handlers) bedRefOptions(ctx context.Context) []pages.Option {
	var beds []models.GardenBed
	if err := h.db.WithContext(ctx).Preload("Plot").Order("name asc").Find(&beds).Error; err != nil {
		applog.Error(ctx, "failed to load bed options", "error", err)
		return nil
	}
	options := make([]pages.Option, 0, len(beds))
	for _, bed := range beds {
		label := bed.Name
		if bed.Plot != nil {
			label = fmt.Sprintf("%s — %s", bed.Plot.Name, bed.Name)
		}
		options = append(options, pages.Option{Value: itoa(bed.ID), Label: label})
	}
	return options
}

func plantCell(plant *models.Plant) string {
	if plant == nil {
		return ""
	}
	return plant.BotanicalName
}

func requireRef(value uint, label string) error {
	if value == 0 {
		return fmt.Errorf("%s is required", label)
	}
	return nil
}

func requireText(value, label string) error {
	if value == "" {
		return fmt.Errorf("%s is required", label)
	}
	return nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func (h *Handlers) plantDefinition() Definition[models.Plant] {
	return Definition[models.Plant]{
		Singular: "plant",
		Title:    "Plants",
		Slug:     "plants",
		Fields: []forms.Field{
			{Name: "botanicalName", Label: "Botanical name", Kind: forms.KindText, Required: true},
			{Name: "commonName", Label: "Common name", Kind: forms.KindText},
			{Name: "family", Label: "Family", Kind: forms.KindText},
			{Name: "genus", Label: "Genus", Kind: forms.KindText},
			{Name: "species", Label: "Species", Kind: forms.KindText},
			{Name: "description", Label: "Description", Kind: forms.KindTextarea},
			{Name: "habitat", Label: "Habitat", Kind: forms.KindText},
			{Name: "hardinessZone", Label: "Hardiness zone", Kind: forms.KindText},
			{Name: "lightNeeds", Label: "Light needs", Kind: forms.KindText},
			{Name: "soilNeeds", Label: "Soil needs", Kind: forms.KindText},
			{Name: "waterNeeds", Label: "Water needs", Kind: forms.KindText},
			{Name: "edible", Label: "Edible", Kind: forms.KindBool},
			{Name: "medicinalUse", Label: "Medicinal use", Kind: forms.KindBool},
		},
		Columns: []string{"Botanical Name", "Common Name", "Family", "Edible", "Medicinal"},
		Cells: func(plant models.Plant) []string {
			return []string{plant.BotanicalName, plant.CommonName, plant.Family, yesNo(plant.Edible), yesNo(plant.MedicinalUse)}
		},
		Validate: func(plant *models.Plant) error {
			return requireText(plant.BotanicalName, "botanical name")
		},
		ListOrder: "botanical_name asc",
	}
}

func (h *Handlers) plantPartDefinition() Definition[models.PlantPart] {
	return Definition[models.PlantPart]{
		Singular: "plant part",
		Title:    "Plant Parts",
		Slug:     "plant-parts",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "name", Label: "Part name", Kind: forms.KindText, Required: true},
			{Name: "description", Label: "Description", Kind: forms.KindTextarea},
			{Name: "harvestNotes", Label: "Harvest notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Part", "Description"},
		Cells: func(part models.PlantPart) []string {
			return []string{plantCell(part.Plant), part.Name, part.Description}
		},
		Validate: func(part *models.PlantPart) error {
			if err := requireRef(part.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(part.Name, "part name")
		},
		ListOrder: "plant_id asc, name asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) medicinalPropertyDefinition() Definition[models.MedicinalProperty] {
	return Definition[models.MedicinalProperty]{
		Singular: "medicinal property",
		Title:    "Medicinal Properties",
		Slug:     "medicinal-properties",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "property", Label: "Property", Kind: forms.KindText, Required: true},
			{Name: "preparation", Label: "Preparation", Kind: forms.KindText},
			{Name: "dosage", Label: "Dosage", Kind: forms.KindText},
			{Name: "contraindications", Label: "Contraindications", Kind: forms.KindTextarea},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Property", "Preparation", "Dosage"},
		Cells: func(property models.MedicinalProperty) []string {
			return []string{plantCell(property.Plant), property.Property, property.Preparation, property.Dosage}
		},
		Validate: func(property *models.MedicinalProperty) error {
			if err := requireRef(property.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(property.Property, "property")
		},
		ListOrder: "plant_id asc, property asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) westernPropertyDefinition() Definition[models.WesternProperty] {
	return Definition[models.WesternProperty]{
		Singular: "western property",
		Title:    "Western Properties",
		Slug:     "western-properties",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "constituent", Label: "Constituent", Kind: forms.KindText, Required: true},
			{Name: "action", Label: "Action", Kind: forms.KindText},
			{Name: "indication", Label: "Indication", Kind: forms.KindText},
			{Name: "evidenceNotes", Label: "Evidence notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Constituent", "Action", "Indication"},
		Cells: func(property models.WesternProperty) []string {
			return []string{plantCell(property.Plant), property.Constituent, property.Action, property.Indication}
		},
		Validate: func(property *models.WesternProperty) error {
			if err := requireRef(property.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(property.Constituent, "constituent")
		},
		ListOrder: "plant_id asc, constituent asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) ayurvedicPropertyDefinition() Definition[models.AyurvedicProperty] {
	return Definition[models.AyurvedicProperty]{
		Singular: "ayurvedic property",
		Title:    "Ayurvedic Properties",
		Slug:     "ayurvedic-properties",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "rasa", Label: "Rasa (taste)", Kind: forms.KindText, Required: true},
			{Name: "virya", Label: "Virya (energy)", Kind: forms.KindText},
			{Name: "vipaka", Label: "Vipaka (post-digestive)", Kind: forms.KindText},
			{Name: "doshaEffect", Label: "Dosha effect", Kind: forms.KindText},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Rasa", "Virya", "Dosha Effect"},
		Cells: func(property models.AyurvedicProperty) []string {
			return []string{plantCell(property.Plant), property.Rasa, property.Virya, property.DoshaEffect}
		},
		Validate: func(property *models.AyurvedicProperty) error {
			if err := requireRef(property.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(property.Rasa, "rasa")
		},
		ListOrder: "plant_id asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) tcmPropertyDefinition() Definition[models.TCMProperty] {
	return Definition[models.TCMProperty]{
		Singular: "TCM property",
		Title:    "TCM Properties",
		Slug:     "tcm-properties",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "taste", Label: "Taste", Kind: forms.KindText, Required: true},
			{Name: "temperature", Label: "Temperature", Kind: forms.KindText},
			{Name: "meridians", Label: "Meridians", Kind: forms.KindText},
			{Name: "actions", Label: "Actions", Kind: forms.KindTextarea},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Taste", "Temperature", "Meridians"},
		Cells: func(property models.TCMProperty) []string {
			return []string{plantCell(property.Plant), property.Taste, property.Temperature, property.Meridians}
		},
		Validate: func(property *models.TCMProperty) error {
			if err := requireRef(property.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(property.Taste, "taste")
		},
		ListOrder: "plant_id asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) herbalActionDefinition() Definition[models.HerbalAction] {
	return Definition[models.HerbalAction]{
		Singular: "herbal action",
		Title:    "Herbal Actions",
		Slug:     "herbal-actions",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "action", Label: "Action", Kind: forms.KindText, Required: true},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Action", "Notes"},
		Cells: func(action models.HerbalAction) []string {
			return []string{plantCell(action.Plant), action.Action, action.Notes}
		},
		Validate: func(action *models.HerbalAction) error {
			if err := requireRef(action.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(action.Action, "action")
		},
		ListOrder: "plant_id asc, action asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) culinaryUseDefinition() Definition[models.CulinaryUse] {
	return Definition[models.CulinaryUse]{
		Singular: "culinary use",
		Title:    "Culinary Uses",
		Slug:     "culinary-uses",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "use", Label: "Use", Kind: forms.KindText, Required: true},
			{Name: "partUsed", Label: "Part used", Kind: forms.KindText},
			{Name: "flavor", Label: "Flavor", Kind: forms.KindText},
			{Name: "preparationNotes", Label: "Preparation notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Use", "Part Used", "Flavor"},
		Cells: func(use models.CulinaryUse) []string {
			return []string{plantCell(use.Plant), use.Use, use.PartUsed, use.Flavor}
		},
		Validate: func(use *models.CulinaryUse) error {
			if err := requireRef(use.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(use.Use, "use")
		},
		ListOrder: "plant_id asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) cutFlowerTraitDefinition() Definition[models.CutFlowerTrait] {
	return Definition[models.CutFlowerTrait]{
		Singular: "cut flower trait",
		Title:    "Cut Flower Traits",
		Slug:     "cut-flower-traits",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "stemLengthCm", Label: "Stem length (cm)", Kind: forms.KindDecimal},
			{Name: "vaseLifeDays", Label: "Vase life (days)", Kind: forms.KindNumber},
			{Name: "harvestStage", Label: "Harvest stage", Kind: forms.KindText, Required: true},
			{Name: "conditioningNotes", Label: "Conditioning notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Stem Length", "Vase Life", "Harvest Stage"},
		Cells: func(trait models.CutFlowerTrait) []string {
			return []string{
				plantCell(trait.Plant),
				pages.FormatMeasure(trait.StemLengthCm, "cm"),
				pages.FormatQuantity(trait.VaseLifeDays),
				trait.HarvestStage,
			}
		},
		Validate: func(trait *models.CutFlowerTrait) error {
			if err := requireRef(trait.PlantID, "plant"); err != nil {
				return err
			}
			return requireText(trait.HarvestStage, "harvest stage")
		},
		ListOrder: "plant_id asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) treatmentDefinition() Definition[models.Treatment] {
	return Definition[models.Treatment]{
		Singular: "treatment",
		Title:    "Treatments",
		Slug:     "treatments",
		Fields: []forms.Field{
			{Name: "name", Label: "Name", Kind: forms.KindText, Required: true},
			{Name: "ailment", Label: "Ailment", Kind: forms.KindText},
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "preparation", Label: "Preparation", Kind: forms.KindTextarea},
			{Name: "dosage", Label: "Dosage", Kind: forms.KindText},
			{Name: "duration", Label: "Duration", Kind: forms.KindText},
			{Name: "cautions", Label: "Cautions", Kind: forms.KindTextarea},
		},
		Columns: []string{"Name", "Ailment", "Plant", "Dosage"},
		Cells: func(treatment models.Treatment) []string {
			return []string{treatment.Name, treatment.Ailment, plantCell(treatment.Plant), treatment.Dosage}
		},
		Validate: func(treatment *models.Treatment) error {
			if err := requireText(treatment.Name, "name"); err != nil {
				return err
			}
			return requireRef(treatment.PlantID, "plant")
		},
		ListOrder: "name asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) seedSavingDefinition() Definition[models.SeedSaving] {
	return Definition[models.SeedSaving]{
		Singular: "seed saving record",
		Title:    "Seed Saving",
		Slug:     "seed-saving",
		Fields: []forms.Field{
			{Name: "plantId", Label: "Plant", Kind: forms.KindRef, Required: true},
			{Name: "isolationDistanceM", Label: "Isolation distance (m)", Kind: forms.KindDecimal},
			{Name: "viabilityYears", Label: "Viability (years)", Kind: forms.KindNumber},
			{Name: "harvestNotes", Label: "Harvest notes", Kind: forms.KindTextarea},
			{Name: "processingNotes", Label: "Processing notes", Kind: forms.KindTextarea},
			{Name: "storageNotes", Label: "Storage notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plant", "Isolation Distance", "Viability"},
		Cells: func(record models.SeedSaving) []string {
			return []string{
				plantCell(record.Plant),
				pages.FormatMeasure(record.IsolationDistanceM, "m"),
				pages.FormatQuantity(record.ViabilityYears),
			}
		},
		Validate: func(record *models.SeedSaving) error {
			return requireRef(record.PlantID, "plant")
		},
		ListOrder: "plant_id asc",
		Preloads:  []string{"Plant"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return h.plantRefOptions(ctx, "plantId")
		},
	}
}

func (h *Handlers) plotDefinition() Definition[models.GardenPlot] {
	return Definition[models.GardenPlot]{
		Singular: "plot",
		Title:    "Plots",
		Slug:     "plots",
		Fields: []forms.Field{
			{Name: "name", Label: "Name", Kind: forms.KindText, Required: true},
			{Name: "location", Label: "Location", Kind: forms.KindText},
			{Name: "lengthM", Label: "Length (m)", Kind: forms.KindDecimal},
			{Name: "widthM", Label: "Width (m)", Kind: forms.KindDecimal},
			{Name: "sunExposure", Label: "Sun exposure", Kind: forms.KindSelect, Options: []string{"Full sun", "Partial shade", "Full shade"}},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Name", "Location", "Size", "Sun Exposure"},
		Cells: func(plot models.GardenPlot) []string {
			size := ""
			if plot.LengthM > 0 && plot.WidthM > 0 {
				size = fmt.Sprintf("%s × %s", pages.FormatMeasure(plot.LengthM, "m"), pages.FormatMeasure(plot.WidthM, "m"))
			}
			return []string{plot.Name, plot.Location, size, plot.SunExposure}
		},
		Validate: func(plot *models.GardenPlot) error {
			return requireText(plot.Name, "name")
		},
		ListOrder: "name asc",
		Delete: func(ctx context.Context, h *Handlers, id uint) error {
			return h.plots.Delete(ctx, id)
		},
	}
}

func (h *Handlers) bedDefinition() Definition[models.GardenBed] {
	return Definition[models.GardenBed]{
		Singular: "garden bed",
		Title:    "Garden Beds",
		Slug:     "beds",
		Fields: []forms.Field{
			{Name: "plotId", Label: "Plot", Kind: forms.KindRef, Required: true},
			{Name: "name", Label: "Name", Kind: forms.KindText, Required: true},
			{Name: "lengthM", Label: "Length (m)", Kind: forms.KindDecimal},
			{Name: "widthM", Label: "Width (m)", Kind: forms.KindDecimal},
			{Name: "soilType", Label: "Soil type", Kind: forms.KindText},
			{Name: "irrigation", Label: "Irrigation", Kind: forms.KindText},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Plot", "Name", "Soil", "Irrigation"},
		Cells: func(bed models.GardenBed) []string {
			plotName := ""
			if bed.Plot != nil {
				plotName = bed.Plot.Name
			}
			return []string{plotName, bed.Name, bed.SoilType, bed.Irrigation}
		},
		Validate: func(bed *models.GardenBed) error {
			if err := requireRef(bed.PlotID, "plot"); err != nil {
				return err
			}
			return requireText(bed.Name, "name")
		},
		ListOrder: "plot_id asc, name asc",
		Preloads:  []string{"Plot"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return map[string][]pages.Option{"plotId": h.plotRefOptions(ctx)}
		},
	}
}

func (h *Handlers) cropRotationDefinition() Definition[models.CropRotation] {
	return Definition[models.CropRotation]{
		Singular: "crop rotation",
		Title:    "Crop Rotations",
		Slug:     "crop-rotations",
		Fields: []forms.Field{
			{Name: "bedId", Label: "Bed", Kind: forms.KindRef, Required: true},
			{Name: "plantFamily", Label: "Plant family", Kind: forms.KindText, Required: true},
			{Name: "season", Label: "Season", Kind: forms.KindSelect, Options: []string{"Spring", "Summer", "Autumn", "Winter"}},
			{Name: "year", Label: "Year", Kind: forms.KindNumber, Required: true},
			{Name: "notes", Label: "Notes", Kind: forms.KindTextarea},
		},
		Columns: []string{"Bed", "Plant Family", "Season", "Year"},
		Cells: func(rotation models.CropRotation) []string {
			bedName := ""
			if rotation.Bed != nil {
				bedName = rotation.Bed.Name
			}
			return []string{bedName, rotation.PlantFamily, rotation.Season, strconv.Itoa(rotation.Year)}
		},
		Validate: func(rotation *models.CropRotation) error {
			if err := requireRef(rotation.BedID, "bed"); err != nil {
				return err
			}
			if err := requireText(rotation.PlantFamily, "plant family"); err != nil {
				return err
			}
			if rotation.Year == 0 {
				return fmt.Errorf("year is required")
			}
			return nil
		},
		ListOrder: "year desc, bed_id asc",
		Preloads:  []string{"Bed"},
		Refs: func(ctx context.Context, h *Handlers) map[string][]pages.Option {
			return map[string][]pages.Option{"bedId": h.bedRefOptions(ctx)}
		},
	}
}
