package domain

import "time"

// Guide is a service guide (how to obtain a certificate, register a birth,
// etc). Steps and Requirements keep the order the admin entered them in.
type Guide struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"uniqueIndex" json:"title"`
	Description  string     `json:"description"`
	Content      string     `json:"content"`
	Steps        StringList `gorm:"type:text" json:"steps"`
	Requirements StringList `gorm:"type:text" json:"requirements"`
	ImageURL     string     `gorm:"column:image_url" json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (Guide) TableName() string { return "guides" }
