package footer

import "github.com/solvex-capital/marketing-core/internal/models"

// UpsertFooterDTO is the request body for createOrUpdateFooter. Every field is
// optional; provided fields replace the stored ones, absent fields survive.
type UpsertFooterDTO struct {
	CompanyName        *string                  `json:"companyName"        binding:"omitempty,max=200"`
	CompanyDescription *string                  `json:"companyDescription" binding:"omitempty,max=1000"`
	Contact            *models.FooterContact    `json:"contact"`
	Sections           []models.FooterSection   `json:"sections"`
	SocialMedia        []models.SocialMediaLink `json:"socialMedia"`
	BackToTopText      *string                  `json:"backToTopText"      binding:"omitempty,max=100"`
	CopyrightText      *string                  `json:"copyrightText"      binding:"omitempty,max=500"`
	LegalLinks         []models.FooterLink      `json:"legalLinks"`
}
