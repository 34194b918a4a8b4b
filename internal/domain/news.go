package domain

import "time"

// News is a village news article. Views is maintained by the public site;
// the admin surface sets it to zero at creation and never writes it again.
type News struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

func (News) TableName() string { return "news" }
