package models

import "gorm.io/gorm"

// Plant is the root taxonomy record every other botanical entity hangs off.
type Plant struct {
	gorm.Model
	BotanicalName string `gorm:"uniqueIndex;not null" json:"botanicalName"`
	CommonName    string `json:"commonName"`
	Family        string `json:"family"`
	Genus         string `json:"genus"`
	Species       string `json:"species"`
	Description   string `gorm:"type:text" json:"description"`
	Habitat       string `json:"habitat"`
	HardinessZone string `json:"hardinessZone"`
	LightNeeds    string `json:"lightNeeds"`
	SoilNeeds     string `json:"soilNeeds"`
	WaterNeeds    string `json:"waterNeeds"`
	Edible        bool   `gorm:"not null;default:false" json:"edible"`
	MedicinalUse  bool   `gorm:"not null;default:false" json:"medicinalUse"`
}
