package models

import "gorm.io/gorm"

// CutFlowerTrait captures the characteristics that matter for cut-flower production.
type CutFlowerTrait struct {
	gorm.Model
	PlantID           uint    `gorm:"not null;index" json:"plantId"`
	Plant             *Plant  `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	StemLengthCm      float64 `json:"stemLengthCm"`
	VaseLifeDays      int     `json:"vaseLifeDays"`
	HarvestStage      string  `gorm:"not null" json:"harvestStage"`
	ConditioningNotes string  `gorm:"type:text" json:"conditioningNotes"`
}
