package models

import "gorm.io/gorm"

// MedicinalProperty records a general therapeutic property of a plant.
type MedicinalProperty struct {
	gorm.Model
	PlantID           uint   `gorm:"not null;index" json:"plantId"`
	Plant             *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Property          string `gorm:"not null" json:"property"`
	Preparation       string `json:"preparation"`
	Dosage            string `json:"dosage"`
	Contraindications string `gorm:"type:text" json:"contraindications"`
	Notes             string `gorm:"type:text" json:"notes"`
}

// WesternProperty captures western-herbalism constituents and indications.
type WesternProperty struct {
	gorm.Model
	PlantID       uint   `gorm:"not null;index" json:"plantId"`
	Plant         *Plant `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Constituent   string `gorm:"not null" json:"constituent"`
	Action        string `json:"action"`
	Indication    string `json:"indication"`
	EvidenceNotes string `gorm:"type:text" json:"evidenceNotes"`
}
