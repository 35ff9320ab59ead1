package blog

// CreateBlogDTO is the request body for creating a blog. Slug is derived from
// the title when omitted.
type CreateBlogDTO struct {
	Title       string   `json:"title"       binding:"required,max=200"`
	Slug        string   `json:"slug"        binding:"omitempty,max=200"`
	Content     string   `json:"content"     binding:"required"`
	Excerpt     string   `json:"excerpt"     binding:"required,max=500"`
	Author      string   `json:"author"      binding:"required,max=100"`
	TypeID      string   `json:"typeId"      binding:"required"`
	Image       string   `json:"image"       binding:"omitempty,url,max=500"`
	Tags        []string `json:"tags"        binding:"omitempty,dive,max=50"`
	IsPublished *bool    `json:"isPublished"`
	ReadTime    *int     `json:"readTime"    binding:"omitempty,min=1,max=120"`
}

// UpdateBlogDTO is the request body for updating a blog (all fields optional).
type UpdateBlogDTO struct {
	Title       *string  `json:"title"       binding:"omitempty,max=200"`
	Slug        *string  `json:"slug"        binding:"omitempty,max=200"`
	Content     *string  `json:"content"`
	Excerpt     *string  `json:"excerpt"     binding:"omitempty,max=500"`
	Author      *string  `json:"author"      binding:"omitempty,max=100"`
	TypeID      *string  `json:"typeId"`
	Image       *string  `json:"image"       binding:"omitempty,url,max=500"`
	Tags        []string `json:"tags"        binding:"omitempty,dive,max=50"`
	IsPublished *bool    `json:"isPublished"`
	ReadTime    *int     `json:"readTime"    binding:"omitempty,min=1,max=120"`
}

// CreateBlogTypeDTO is the request body for creating a blog type.
type CreateBlogTypeDTO struct {
	Name        string `json:"name"        binding:"required,max=100"`
	Slug        string `json:"slug"        binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateBlogTypeDTO is the request body for updating a blog type.
type UpdateBlogTypeDTO struct {
	Name        *string `json:"name"        binding:"omitempty,max=100"`
	Slug        *string `json:"slug"        binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}
