package card

import "github.com/solvex-capital/marketing-core/internal/models"

// UpsertCardDTO is the request body for createOrUpdateInvestmentCard. With a
// known cardId it patches the existing card; without one it creates a card.
// Sending isDeleted=true together with a cardId soft-deletes the card instead.
type UpsertCardDTO struct {
	CardID      string               `json:"cardId"      binding:"omitempty,uuid"`
	CompanyName *string              `json:"companyName" binding:"omitempty,max=200"`
	CompanyLogo *string              `json:"companyLogo" binding:"omitempty,max=500"`
	Sections    []models.CardSection `json:"sections"`
	IsDeleted   *bool                `json:"isDeleted"`
}
