package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appdb "herbarium/internal/db"
	applog "herbarium/internal/log"
	"herbarium/models"
)

// New returns an in-memory sqlite database seeded with a small garden so the
// admin can be explored without a PostgreSQL instance.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	database, err := gorm.Open(sqlite.Open("file:herbarium-mock?mode=memory&cache=shared"), appdb.Options())
	if err != nil {
		return nil, err
	}

	if err := appdb.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	chamomile := models.Plant{
		BotanicalName: "Matricaria chamomilla",
		CommonName:    "German Chamomile",
		Family:        "Asteraceae",
		Genus:         "Matricaria",
		Species:       "chamomilla",
		Description:   "Annual herb with apple-scented daisy flowers used for calming teas.",
		HardinessZone: "3-9",
		LightNeeds:    "Full sun",
		Edible:        true,
		MedicinalUse:  true,
	}

	calendula := models.Plant{
		BotanicalName: "Calendula officinalis",
		CommonName:    "Pot Marigold",
		Family:        "Asteraceae",
		Genus:         "Calendula",
		Species:       "officinalis",
		Description:   "Bright orange blooms valued for skin salves and edible petals.",
		HardinessZone: "2-11",
		LightNeeds:    "Full sun",
		Edible:        true,
		MedicinalUse:  true,
	}

	tulsi := models.Plant{
		BotanicalName: "Ocimum tenuiflorum",
		CommonName:    "Holy Basil",
		Family:        "Lamiaceae",
		Genus:         "Ocimum",
		Species:       "tenuiflorum",
		Description:   "Sacred adaptogenic basil at home in Ayurvedic practice.",
		HardinessZone: "10-11",
		LightNeeds:    "Full sun",
		Edible:        true,
		MedicinalUse:  true,
	}

	plants := []*models.Plant{&chamomile, &calendula, &tulsi}
	for _, plant := range plants {
		if err := database.WithContext(ctx).Create(plant).Error; err != nil {
			return err
		}
	}

	properties := []any{
		&models.MedicinalProperty{
			PlantID:     chamomile.ID,
			Property:    "Carminative",
			Preparation: "Infusion of dried flowers",
			Dosage:      "1-2 tsp per cup, up to three times daily",
		},
		&models.HerbalAction{PlantID: chamomile.ID, Action: "Nervine"},
		&models.AyurvedicProperty{PlantID: tulsi.ID, Rasa: "Pungent, bitter", Virya: "Heating", DoshaEffect: "Reduces kapha and vata"},
		&models.TCMProperty{PlantID: chamomile.ID, Taste: "Sweet, bitter", Temperature: "Neutral", Meridians: "Liver, Lung"},
		&models.CulinaryUse{PlantID: calendula.ID, Use: "Petal garnish", PartUsed: "Flower", Flavor: "Peppery"},
		&models.CutFlowerTrait{PlantID: calendula.ID, StemLengthCm: 45, VaseLifeDays: 7, HarvestStage: "Half-open bloom"},
		&models.Treatment{Name: "Calendula salve", Ailment: "Minor skin irritation", PlantID: calendula.ID, Preparation: "Infused oil thickened with beeswax"},
		&models.SeedSaving{PlantID: calendula.ID, IsolationDistanceM: 150, ViabilityYears: 3, StorageNotes: "Cool and dark, silica gel pack"},
	}
	for _, property := range properties {
		if err := database.WithContext(ctx).Create(property).Error; err != nil {
			return err
		}
	}

	sunPlot := models.GardenPlot{
		Name:        "South Border",
		Location:    "Behind the greenhouse",
		LengthM:     12,
		WidthM:      4,
		SunExposure: "Full sun",
	}
	if err := database.WithContext(ctx).Create(&sunPlot).Error; err != nil {
		return err
	}

	teaBed := models.GardenBed{
		PlotID:     sunPlot.ID,
		Name:       "Tea Herb Bed",
		LengthM:    3,
		WidthM:     1.2,
		SoilType:   "Loam",
		Irrigation: "Drip line",
	}
	if err := database.WithContext(ctx).Create(&teaBed).Error; err != nil {
		return err
	}

	planting := models.Planting{
		PlantID:         chamomile.ID,
		PlotID:          &sunPlot.ID,
		BedID:           &teaBed.ID,
		PlantingDate:    time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC),
		Method:          "Direct sow",
		QuantityPlanted: 40,
		SpacingCm:       15,
		DepthCm:         0.5,
		AreaSqm:         1.5,
	}
	if err := database.WithContext(ctx).Create(&planting).Error; err != nil {
		return err
	}

	companion := models.PlantingPlant{
		PlantingID: planting.ID,
		PlantID:    calendula.ID,
		Quantity:   6,
		XPosition:  0.5,
		YPosition:  0.2,
		Notes:      "Edge row to draw pollinators",
	}
	if err := database.WithContext(ctx).Create(&companion).Error; err != nil {
		return err
	}

	rotation := models.CropRotation{
		BedID:       teaBed.ID,
		PlantFamily: "Asteraceae",
		Season:      "Spring",
		Year:        2024,
	}
	if err := database.WithContext(ctx).Create(&rotation).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
