package models

import "gorm.io/gorm"

// HerbalAction tags a plant with a pharmacological action (astringent, nervine, ...).
type HerbalAction struct {
	gorm.Model
	PlantID uint   `gorm:"not null;index" json:"plantId"`
	Plant   *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Action  string `gorm:"not null" json:"action"`
	Notes   string `gorm:"type:text" json:"notes"`
}
