package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	applog "herbarium/internal/log"
	"herbarium/models"
)

// Plantings owns every write that touches the plantings and planting_plants
// tables. A planting and its companion rows form one atomic unit: callers
// never manipulate the two tables independently.
type Plantings struct {
	db *gorm.DB
}

// NewPlantings builds a planting repository on top of an injected gorm handle.
func NewPlantings(db *gorm.DB) *Plantings {
	return &Plantings{db: db}
}

// Create inserts a planting and its companion rows inside one transaction.
// On any failure neither the planting nor any companion row persists. A
// duplicate companion pair surfaces as ErrConflict.
func (r *Plantings) Create(ctx context.Context, planting *models.Planting, companions []models.PlantingPlant) (*models.Planting, error) {
	if planting == nil {
		return nil, fmt.Errorf("planting must not be nil")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planting.CompanionPlants = nil
		if err := tx.Create(planting).Error; err != nil {
			return err
		}

		if len(companions) > 0 {
			for i := range companions {
				companions[i].ID = 0
				companions[i].PlantingID = planting.ID
			}
			if err := tx.Create(&companions).Error; err != nil {
				return err
			}
		}

		planting.CompanionPlants = companions
		return nil
	})
	if err != nil {
		applog.Error(ctx, "planting create rolled back", "error", err)
		return nil, classify(err)
	}

	return planting, nil
}

// Update applies the supplied attributes to an existing planting and, when a
// companion list is provided, replaces the full companion set: existing rows
// are deleted and the submitted set reinserted. There is no diff or merge;
// concurrent updates race with last-commit-wins for the whole set. CreatedAt
// is immutable and stripped from the attributes. The updated planting is
// re-read, companions included, inside the same transaction.
func (r *Plantings) Update(ctx context.Context, id uint, attrs map[string]any, companions *[]models.PlantingPlant) (*models.Planting, error) {
	var result models.Planting

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Planting
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		if len(attrs) > 0 {
			delete(attrs, "created_at")
			if err := tx.Model(&existing).Updates(attrs).Error; err != nil {
				return err
			}
		}

		if companions != nil {
			if err := tx.Where("planting_id = ?", id).Delete(&models.PlantingPlant{}).Error; err != nil {
				return err
			}
			replacement := *companions
			if len(replacement) > 0 {
				for i := range replacement {
					replacement[i].ID = 0
					replacement[i].PlantingID = id
				}
				if err := tx.Create(&replacement).Error; err != nil {
					return err
				}
			}
		}

		return tx.Preload("CompanionPlants").First(&result, id).Error
	})
	if err != nil {
		applog.Error(ctx, "planting update rolled back", "error", err, "plantingId", id)
		return nil, classify(err)
	}

	return &result, nil
}

// Delete removes a planting together with its companion rows. Companions go
// first to satisfy the foreign key. Deleting a planting that does not exist
// is not an error.
func (r *Plantings) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planting_id = ?", id).Delete(&models.PlantingPlant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Planting{}, id).Error
	})
	if err != nil {
		applog.Error(ctx, "planting delete rolled back", "error", err, "plantingId", id)
		return classify(err)
	}
	return nil
}

// Get returns a planting with its companion rows, or ErrNotFound.
func (r *Plantings) Get(ctx context.Context, id uint) (*models.Planting, error) {
	var planting models.Planting
	err := r.db.WithContext(ctx).
		Preload("CompanionPlants.Plant").
		Preload("Plant").
		Preload("Plot").
		Preload("Bed").
		First(&planting, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &planting, nil
}

// List returns every planting ordered by planting date, companions preloaded.
func (r *Plantings) List(ctx context.Context) ([]models.Planting, error) {
	var plantings []models.Planting
	err := r.db.WithContext(ctx).
		Preload("CompanionPlants").
		Preload("Plant").
		Order("planting_date desc, id desc").
		Find(&plantings).Error
	if err != nil {
		return nil, classify(err)
	}
	return plantings, nil
}
