package models

import "time"

// BlogModel is a blog article. TypeID references a BlogTypeModel by its
// external id (value reference, no foreign key constraint).
type BlogModel struct {
	Base
	BlogID      string      `json:"blogId"      gorm:"type:char(36);uniqueIndex;not null"`
	Title       string      `json:"title"       gorm:"size:200;not null"`
	Slug        string      `json:"slug"        gorm:"size:200;uniqueIndex;not null"`
	Content     string      `json:"content"     gorm:"type:longtext"`
	Excerpt     string      `json:"excerpt"     gorm:"size:500"`
	Author      string      `json:"author"      gorm:"size:100;index"`
	TypeID      string      `json:"typeId"      gorm:"type:char(36);index:idx_blogs_type_visibility"`
	Image       string      `json:"image,omitempty" gorm:"size:500"`
	Tags        StringSlice `json:"tags"        gorm:"type:json;serializer:json"`
	IsPublished bool        `json:"isPublished" gorm:"default:false;index:idx_blogs_type_visibility"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty" gorm:"index"`
	ViewCount   int64       `json:"viewCount"   gorm:"default:0"`
	ReadTime    int         `json:"readTime"    gorm:"default:0"`
	SoftDelete
}

func (BlogModel) TableName() string { return "blogs" }

// BlogSummary is the list-view projection embedded in the types-with-blogs
// aggregation: no content body, only what a card needs.
type BlogSummary struct {
	BlogID      string      `json:"blogId"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Excerpt     string      `json:"excerpt"`
	Author      string      `json:"author"`
	Image       string      `json:"image,omitempty"`
	Tags        StringSlice `json:"tags"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty"`
	ViewCount   int64       `json:"viewCount"`
}

// Summary returns the list-view projection of a blog.
func (b *BlogModel) Summary() BlogSummary {
	tags := b.Tags
	if tags == nil {
		tags = StringSlice{}
	}
	return BlogSummary{
		BlogID:      b.BlogID,
		Title:       b.Title,
		Slug:        b.Slug,
		Excerpt:     b.Excerpt,
		Author:      b.Author,
		Image:       b.Image,
		Tags:        tags,
		PublishedAt: b.PublishedAt,
		ViewCount:   b.ViewCount,
	}
}
