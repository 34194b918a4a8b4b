package tourism

import "desaadmin/internal/domain"

type SiteRequest struct {
	Name           string  `form:"name" json:"name" binding:"required"`
	Description    string  `form:"description" json:"description"`
	OperatingHours string  `form:"operating_hours" json:"operating_hours"`
	Address        string  `form:"address" json:"address"`
	Contact        string  `form:"contact" json:"contact"`
	Rating         float64 `form:"rating" json:"rating"`
	ImageURL       string  `form:"image_url" json:"image_url"`
}

func (r SiteRequest) Model() *domain.TourismSite {
	return &domain.TourismSite{
		Name:           r.Name,
		Description:    r.Description,
		OperatingHours: r.OperatingHours,
		Address:        r.Address,
		Contact:        r.Contact,
		Rating:         r.Rating,
		ImageURL:       r.ImageURL,
	}
}

func (r SiteRequest) UpdateFields() map[string]any {
	return map[string]any{
		"name":            r.Name,
		"description":     r.Description,
		"operating_hours": r.OperatingHours,
		"address":         r.Address,
		"contact":         r.Contact,
		"rating":          r.Rating,
		"image_url":       r.ImageURL,
	}
}
