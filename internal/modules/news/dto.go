package news

import "desaadmin/internal/domain"

type NewsRequest struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description"`
	Content     string `form:"content" json:"content"`
	ImageURL    string `form:"image_url" json:"image_url"`
}

// Model builds the insert payload. Views always starts at zero; the admin
// surface never writes it afterwards.
func (r NewsRequest) Model() *domain.News {
	return &domain.News{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		ImageURL:    r.ImageURL,
		Views:       0,
	}
}

// UpdateFields excludes views: it is read-only on this surface.
func (r NewsRequest) UpdateFields() map[string]any {
	return map[string]any{
		"title":       r.Title,
		"description": r.Description,
		"content":     r.Content,
		"image_url":   r.ImageURL,
	}
}
