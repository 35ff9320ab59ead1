package landing

import "github.com/solvex-capital/marketing-core/internal/models"

// UpsertLandingDTO is the request body for createOrUpdatelandingpage. All
// fields are optional on update, but a first-time create must carry all three.
type UpsertLandingDTO struct {
	Header   *string             `json:"header"   binding:"omitempty,max=200"`
	Subtitle *string             `json:"subtitle" binding:"omitempty,max=500"`
	Numbers  []models.NumberItem `json:"numbers"`
}
