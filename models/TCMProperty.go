package models

import "gorm.io/gorm"

// TCMProperty describes a plant in traditional Chinese medicine terms.
type TCMProperty struct {
	gorm.Model
	PlantID     uint   `gorm:"not null;index" json:"plantId"`
	Plant       *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Taste       string `gorm:"not null" json:"taste"`
	Temperature string `json:"temperature"`
	Meridians   string `json:"meridians"`
	Actions     string `gorm:"type:text" json:"actions"`
	Notes       string `gorm:"type:text" json:"notes"`
}
