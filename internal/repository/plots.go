package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	applog "herbarium/internal/log"
	"herbarium/models"
)

// Plots guards plot deletion: a plot with dependent beds must not disappear
// from under them.
type Plots struct {
	db *gorm.DB
}

// NewPlots builds a plot repository on top of an injected gorm handle.
func NewPlots(db *gorm.DB) *Plots {
	return &Plots{db: db}
}

// Delete removes a plot unless dependent garden beds exist, in which case it
// returns ErrConflict. The existence check and the delete share a transaction
// so a bed inserted concurrently cannot slip between them.
func (r *Plots) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bedCount int64
		if err := tx.Model(&models.GardenBed{}).Where("plot_id = ?", id).Count(&bedCount).Error; err != nil {
			return err
		}
		if bedCount > 0 {
			return fmt.Errorf("%w: plot has %d dependent garden bed(s); delete or move them first", ErrConflict, bedCount)
		}
		return tx.Delete(&models.GardenPlot{}, id).Error
	})
	if err != nil {
		applog.Error(ctx, "plot delete refused or rolled back", "error", err, "plotId", id)
		return classify(err)
	}
	return nil
}
