package models

// LandingPageModel is the landing-page hero block. Global singleton; the
// original data model never soft-deletes it, so it carries no delete marker.
type LandingPageModel struct {
	Base
	Header   string       `json:"header"   gorm:"size:200;not null"`
	Subtitle string       `json:"subtitle" gorm:"size:500;not null"`
	Numbers  []NumberItem `json:"numbers"  gorm:"type:json;serializer:json"`
}

func (LandingPageModel) TableName() string { return "landing_pages" }
