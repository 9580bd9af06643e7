package models

import "gorm.io/gorm"

// PlantPart names a usable portion of a plant (leaf, root, flower, bark).
type PlantPart struct {
	gorm.Model
	PlantID      uint   `gorm:"not null;index" json:"plantId"`
	Plant        *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	HarvestNotes string `gorm:"type:text" json:"harvestNotes"`
}
