package models

import "gorm.io/gorm"

// SeedSaving holds the seed saving guidance for a plant.
type SeedSaving struct {
	gorm.Model
	PlantID            uint    `gorm:"not null;index" json:"plantId"`
	Plant              *Plant  `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	IsolationDistanceM float64 `json:"isolationDistanceM"`
	ViabilityYears     int     `json:"viabilityYears"`
	HarvestNotes       string  `gorm:"type:text" json:"harvestNotes"`
	ProcessingNotes    string  `gorm:"type:text" json:"processingNotes"`
	StorageNotes       string  `gorm:"type:text" json:"storageNotes"`
}
