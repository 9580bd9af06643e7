package models

import "gorm.io/gorm"

// AyurvedicProperty describes a plant in Ayurvedic terms.
type AyurvedicProperty struct {
	gorm.Model
	PlantID     uint   `gorm:"not null;index" json:"plantId"`
	Plant       *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Rasa        string `gorm:"not null" json:"rasa"`
	Virya       string `json:"virya"`
	Vipaka      string `json:"vipaka"`
	DoshaEffect string `json:"doshaEffect"`
	Notes       string `gorm:"type:text" json:"notes"`
}
