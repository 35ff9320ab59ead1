package models

// PageType enumerates the static pages managed through the unified
// page-content API. One live PageContentModel row exists per value.
type PageType string

const (
	PageTypeStory              PageType = "story"
	PageTypeLeadershipTeam     PageType = "leadershipTeam"
	PageTypeLanding            PageType = "landing"
	PageTypeVision             PageType = "vision"
	PageTypeInvestmentStrategy PageType = "investmentStrategy"
	PageTypePartners           PageType = "partners"
	PageTypeInsights           PageType = "insights"
	PageTypeSuccessStories     PageType = "successStories"
	PageTypePerformanceMetrics PageType = "performanceMetrics"
	PageTypeJoinSuccess        PageType = "joinSuccess"
)

// PageTypes lists every valid page type.
var PageTypes = []PageType{
	PageTypeStory,
	PageTypeLeadershipTeam,
	PageTypeLanding,
	PageTypeVision,
	PageTypeInvestmentStrategy,
	PageTypePartners,
	PageTypeInsights,
	PageTypeSuccessStories,
	PageTypePerformanceMetrics,
	PageTypeJoinSuccess,
}

// Valid reports whether t names a known page type.
func (t PageType) Valid() bool {
	for _, known := range PageTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PageItem is a dynamic content entry (carousel slide, team member, ...).
type PageItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ButtonText is a call-to-action label.
type ButtonText struct {
	ButtonText string `json:"buttonText"`
}

// PageContentModel holds the editable content of one static page. The
// page type is the singleton key: at most one live row per value.
type PageContentModel struct {
	Base
	PageContentID string       `json:"pageContentId" gorm:"type:char(36);uniqueIndex;not null"`
	PageType      PageType     `json:"pageType"      gorm:"size:50;index;not null"`
	Title         string       `json:"title,omitempty"    gorm:"size:200"`
	Slug          string       `json:"slug,omitempty"     gorm:"size:200"`
	Content       string       `json:"content,omitempty"  gorm:"size:5050"`
	Subtitle      string       `json:"subtitle,omitempty" gorm:"size:500"`
	Items         []PageItem   `json:"items"   gorm:"type:json;serializer:json"`
	Numbers       []NumberItem `json:"numbers" gorm:"type:json;serializer:json"`
	BtnTxt        []ButtonText `json:"btnTxt"  gorm:"type:json;serializer:json"`
	SoftDelete
}

func (PageContentModel) TableName() string { return "page_contents" }
