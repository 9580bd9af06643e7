package models

import (
	"time"

	"gorm.io/gorm"
)

// Planting records a sowing or transplanting event in a plot/bed. Its
// companion rows are only ever written together with the planting itself.
type Planting struct {
	gorm.Model
	PlantID         uint            `gorm:"not null;index" json:"plantId"`
	Plant           *Plant          `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	PlotID          *uint           `gorm:"index" json:"plotId"`
	Plot            *GardenPlot     `gorm:"foreignKey:PlotID" json:"plot,omitempty"`
	BedID           *uint           `gorm:"index" json:"bedId"`
	Bed             *GardenBed      `gorm:"foreignKey:BedID" json:"bed,omitempty"`
	PlantingDate    time.Time       `json:"plantingDate"`
	Method          string          `json:"method"`
	QuantityPlanted int             `json:"quantityPlanted"`
	SpacingCm       float64         `json:"spacingCm"`
	DepthCm         float64         `json:"depthCm"`
	AreaSqm         float64         `json:"areaSqm"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CompanionPlants []PlantingPlant `gorm:"foreignKey:PlantingID" json:"companionPlants"`
}

// PlantingPlant is a companion plant placed within a planting's footprint.
// A companion plant may appear at most once per planting. Rows are hard
// deleted: the companion set is replaced wholesale on every planting update,
// so soft-deleted rows would trip the composite unique index.
type PlantingPlant struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	PlantingID uint      `gorm:"not null;uniqueIndex:idx_planting_companion" json:"plantingId"`
	PlantID    uint      `gorm:"not null;uniqueIndex:idx_planting_companion" json:"plantId"`
	Plant      *Plant    `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Quantity   int       `json:"quantity"`
	XPosition  float64   `json:"xPosition"`
	YPosition  float64   `json:"yPosition"`
	Notes      string    `gorm:"type:text" json:"notes"`
}
