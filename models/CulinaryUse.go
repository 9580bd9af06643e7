package models

import "gorm.io/gorm"

// CulinaryUse records how a plant (or part of it) is used in the kitchen.
type CulinaryUse struct {
	gorm.Model
	PlantID          uint   `gorm:"not null;index" json:"plantId"`
	Plant            *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Use              string `gorm:"not null" json:"use"`
	PartUsed         string `json:"partUsed"`
	Flavor           string `json:"flavor"`
	PreparationNotes string `gorm:"type:text" json:"preparationNotes"`
}
