package models

import "gorm.io/gorm"

// GardenPlot is a top-level garden area that groups beds.
type GardenPlot struct {
	gorm.Model
	Name        string      `gorm:"not null" json:"name"`
	Location    string      `json:"location"`
	LengthM     float64     `json:"lengthM"`
	WidthM      float64     `json:"widthM"`
	SunExposure string      `json:"sunExposure"`
	Notes       string      `gorm:"type:text" json:"notes"`
	Beds        []GardenBed `gorm:"foreignKey:PlotID" json:"beds,omitempty"`
}

// GardenBed subdivides a plot with its own soil and irrigation attributes.
type GardenBed struct {
	gorm.Model
	PlotID     uint        `gorm:"not null;index" json:"plotId"`
	Plot       *GardenPlot `gorm:"foreignKey:PlotID" json:"plot,omitempty"`
	Name       string      `gorm:"not null" json:"name"`
	LengthM    float64     `json:"lengthM"`
	WidthM     float64     `json:"widthM"`
	SoilType   string      `json:"soilType"`
	Irrigation string      `json:"irrigation"`
	Notes      string      `gorm:"type:text" json:"notes"`
}
