package models

import "gorm.io/gorm"

// CropRotation records which plant family occupied a bed in a given season.
type CropRotation struct {
	gorm.Model
	BedID       uint       `gorm:"not null;index" json:"bedId"`
	Bed         *GardenBed `gorm:"foreignKey:BedID" json:"bed,omitempty"`
	PlantFamily string     `gorm:"not null" json:"plantFamily"`
	Season      string     `json:"season"`
	Year        int        `gorm:"not null" json:"year"`
	Notes       string     `gorm:"type:text" json:"notes"`
}
