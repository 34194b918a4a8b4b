package guides

import "desaadmin/internal/domain"

// GuideRequest is the create/update form. Steps and requirements arrive as
// newline-delimited text and become ordered lists only at submit time.
type GuideRequest struct {
	Title            string `form:"title" json:"title" binding:"required"`
	Description      string `form:"description" json:"description"`
	Content          string `form:"content" json:"content"`
	StepsText        string `form:"steps_text" json:"steps_text"`
	RequirementsText string `form:"requirements_text" json:"requirements_text"`
	ImageURL         string `form:"image_url" json:"image_url"`
}

func (r GuideRequest) Model() *domain.Guide {
	return &domain.Guide{
		Title:        r.Title,
		Description:  r.Description,
		Content:      r.Content,
		Steps:        SplitLines(r.StepsText),
		Requirements: SplitLines(r.RequirementsText),
		ImageURL:     r.ImageURL,
	}
}

func (r GuideRequest) UpdateFields() map[string]any {
	return map[string]any{
		"title":        r.Title,
		"description":  r.Description,
		"content":      r.Content,
		"steps":        domain.StringList(SplitLines(r.StepsText)),
		"requirements": domain.StringList(SplitLines(r.RequirementsText)),
		"image_url":    r.ImageURL,
	}
}
