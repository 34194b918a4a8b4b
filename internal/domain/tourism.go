package domain

import "time"

// TourismSite is a village tourism attraction.
type TourismSite struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OperatingHours string    `gorm:"column:operating_hours" json:"operating_hours"`
	Address        string    `json:"address"`
	Contact        string    `json:"contact"`
	Rating         float64   `json:"rating"`
	ImageURL       string    `gorm:"column:image_url" json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

func (TourismSite) TableName() string { return "tourism_sites" }
