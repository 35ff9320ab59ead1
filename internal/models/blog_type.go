package models

// BlogTypeModel is a blog category. Deleting a type cascades a soft delete to
// every blog referencing it.
type BlogTypeModel struct {
	Base
	TypeID      string `json:"typeId"      gorm:"type:char(36);uniqueIndex;not null"`
	Name        string `json:"name"        gorm:"size:100;uniqueIndex;not null"`
	Slug        string `json:"slug"        gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description,omitempty" gorm:"size:500"`
	IsActive    bool   `json:"isActive"    gorm:"index"`
	SoftDelete
}

func (BlogTypeModel) TableName() string { return "blog_types" }

// TypeWithBlogs is one row of the types-with-blogs aggregation.
type TypeWithBlogs struct {
	TypeID      string        `json:"typeId"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description,omitempty"`
	Blogs       []BlogSummary `json:"blogs"`
}
