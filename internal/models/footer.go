package models

// FooterContact holds the company contact block of the footer.
type FooterContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// FooterLink is a single navigational link.
type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// FooterSection groups links under a heading.
type FooterSection struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// SocialMediaLink points at a social profile.
type SocialMediaLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// FooterModel is the site footer. Singleton: at most one live row.
type FooterModel struct {
	Base
	FooterID           string            `json:"footerId"           gorm:"type:char(36);uniqueIndex;not null"`
	CompanyName        string            `json:"companyName"        gorm:"size:200"`
	CompanyDescription string            `json:"companyDescription" gorm:"size:1000"`
	Contact            FooterContact     `json:"contact"            gorm:"type:json;serializer:json"`
	Sections           []FooterSection   `json:"sections"           gorm:"type:json;serializer:json"`
	SocialMedia        []SocialMediaLink `json:"socialMedia"        gorm:"type:json;serializer:json"`
	BackToTopText      string            `json:"backToTopText"      gorm:"size:100"`
	CopyrightText      string            `json:"copyrightText"      gorm:"size:500"`
	LegalLinks         []FooterLink      `json:"legalLinks"         gorm:"type:json;serializer:json"`
	SoftDelete
}

func (FooterModel) TableName() string { return "footers" }
