package models

import "gorm.io/gorm"

// Treatment is a named remedy built around a single plant.
type Treatment struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Ailment     string `json:"ailment"`
	PlantID     uint   `gorm:"not null;index" json:"plantId"`
	Plant       *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Preparation string `gorm:"type:text" json:"preparation"`
	Dosage      string `json:"dosage"`
	Duration    string `json:"duration"`
	Cautions    string `gorm:"type:text" json:"cautions"`
}
