package pagecontent

import "github.com/solvex-capital/marketing-core/internal/models"

// UpsertPageContentDTO is the request body for createOrUpdatePageContent.
// PageType is the singleton key; all content fields are optional and merge
// into the live row for that type.
type UpsertPageContentDTO struct {
	PageType models.PageType     `json:"pageType" binding:"required,pagetype"`
	Title    *string             `json:"title"    binding:"omitempty,max=200"`
	Slug     *string             `json:"slug"     binding:"omitempty,max=200"`
	Content  *string             `json:"content"  binding:"omitempty,max=5050"`
	Subtitle *string             `json:"subtitle" binding:"omitempty,max=500"`
	Items    []models.PageItem   `json:"items"`
	Numbers  []models.NumberItem `json:"numbers"`
	BtnTxt   []models.ButtonText `json:"btnTxt"`
}
