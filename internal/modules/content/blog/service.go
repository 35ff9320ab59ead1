package blog

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/pagination"
	"github.com/solvex-capital/marketing-core/internal/pkg/readtime"
	"github.com/solvex-capital/marketing-core/internal/pkg/sanitize"
)

// Service handles blog and blog type business logic.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// CascadeDeleteResult reports the outcome of a blog type deletion.
type CascadeDeleteResult struct {
	BlogTypeDeleted   bool     `json:"blogTypeDeleted"`
	BlogsDeletedCount int      `json:"blogsDeletedCount"`
	DeletedBlogIDs    []string `json:"deletedBlogIds"`
}

// GetBlogsByType returns published, non-deleted blogs for a type, newest first.
func (s *Service) GetBlogsByType(typeID string, q pagination.Query) ([]models.BlogModel, pagination.Result, error) {
	tx := s.db.Model(&models.BlogModel{}).
		Where("type_id = ? AND is_published = ? AND is_deleted = ?", typeID, true, false).
		Order("published_at DESC")

	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, q, &blogs)
	return blogs, pag, err
}

// GetByBlogID fetches a single blog by its external id. Admin mode includes
// unpublished blogs; deleted blogs are never returned.
func (s *Service) GetByBlogID(blogID string, isAdmin bool) (*models.BlogModel, error) {
	var blog models.BlogModel
	tx := s.db.Where("blog_id = ? AND is_deleted = ?", blogID, false)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// GetBySlug fetches a single blog by slug.
func (s *Service) GetBySlug(slug string, isAdmin bool) (*models.BlogModel, error) {
	var blog models.BlogModel
	tx := s.db.Where("slug = ? AND is_deleted = ?", slug, false)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// Search matches published blogs whose title, excerpt or content contains the
// term, newest first.
func (s *Service) Search(term string, q pagination.Query) ([]models.BlogModel, pagination.Result, error) {
	pattern := "%" + sanitize.Text(term) + "%"
	tx := s.db.Model(&models.BlogModel{}).
		Where("is_published = ? AND is_deleted = ?", true, false).
		Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", pattern, pattern, pattern).
		Order("published_at DESC")

	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, q, &blogs)
	return blogs, pag, err
}

// GetActiveTypes lists active, non-deleted blog types ordered by name.
func (s *Service) GetActiveTypes() ([]models.BlogTypeModel, error) {
	var types []models.BlogTypeModel
	err := s.db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

// CreateBlog inserts a new blog with a generated external id.
func (s *Service) CreateBlog(dto *CreateBlogDTO) (*models.BlogModel, error) {
	slug := dto.Slug
	if slug == "" {
		slug = dto.Title
	}

	blog := models.BlogModel{
		BlogID:  uuid.New().String(),
		Title:   sanitize.Text(dto.Title),
		Slug:    sanitize.Slug(slug),
		Content: sanitize.HTML(dto.Content),
		Excerpt: sanitize.Text(dto.Excerpt),
		Author:  sanitize.Text(dto.Author),
		TypeID:  dto.TypeID,
		Image:   sanitize.Text(dto.Image),
		Tags:    sanitize.Tags(dto.Tags),
	}
	if dto.IsPublished != nil {
		blog.IsPublished = *dto.IsPublished
	}
	if blog.IsPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}
	if dto.ReadTime != nil {
		blog.ReadTime = *dto.ReadTime
	} else {
		blog.ReadTime = readtime.Estimate(blog.Content)
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}
	s.log.Info("blog created", zap.String("blog_id", blog.BlogID), zap.String("slug", blog.Slug))
	return &blog, nil
}

// UpdateBlog patches a blog by its external id. Returns nil when no live blog
// matches. The first unpublished-to-published transition stamps publishedAt;
// content changes re-derive readTime unless the caller supplied one.
func (s *Service) UpdateBlog(blogID string, dto *UpdateBlogDTO) (*models.BlogModel, error) {
	blog, err := s.GetByBlogID(blogID, true)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = sanitize.Text(*dto.Title)
	}
	if dto.Slug != nil {
		updates["slug"] = sanitize.Slug(*dto.Slug)
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = sanitize.Text(*dto.Excerpt)
	}
	if dto.Author != nil {
		updates["author"] = sanitize.Text(*dto.Author)
	}
	if dto.TypeID != nil {
		updates["type_id"] = *dto.TypeID
	}
	if dto.Image != nil {
		updates["image"] = sanitize.Text(*dto.Image)
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringSlice(sanitize.Tags(dto.Tags))
	}
	if dto.Content != nil {
		content := sanitize.HTML(*dto.Content)
		updates["content"] = content
		if dto.ReadTime == nil {
			updates["read_time"] = readtime.Estimate(content)
		}
	}
	if dto.ReadTime != nil {
		updates["read_time"] = *dto.ReadTime
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
		if *dto.IsPublished && !blog.IsPublished && blog.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) == 0 {
		return blog, nil
	}
	if err := s.db.Model(blog).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.log.Info("blog updated", zap.String("blog_id", blogID))
	return blog, nil
}

// DeleteBlog soft-deletes a live blog by its external id. Returns false when
// no live blog matches.
func (s *Service) DeleteBlog(blogID string) (bool, error) {
	res := s.db.Model(&models.BlogModel{}).
		Where("blog_id = ? AND is_deleted = ?", blogID, false).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	s.log.Info("blog deleted", zap.String("blog_id", blogID))
	return true, nil
}

// IncrementViewCount atomically increments the view counter.
func (s *Service) IncrementViewCount(blogID string) error {
	return s.db.Model(&models.BlogModel{}).Where("blog_id = ?", blogID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// CreateBlogType inserts a new blog type with a generated external id.
func (s *Service) CreateBlogType(dto *CreateBlogTypeDTO) (*models.BlogTypeModel, error) {
	slug := dto.Slug
	if slug == "" {
		slug = dto.Name
	}

	bt := models.BlogTypeModel{
		TypeID:      uuid.New().String(),
		Name:        sanitize.Text(dto.Name),
		Slug:        sanitize.Slug(slug),
		Description: sanitize.Text(dto.Description),
		IsActive:    true,
	}
	if dto.IsActive != nil {
		bt.IsActive = *dto.IsActive
	}

	if err := s.db.Create(&bt).Error; err != nil {
		return nil, err
	}
	s.log.Info("blog type created", zap.String("type_id", bt.TypeID), zap.String("name", bt.Name))
	return &bt, nil
}

// GetTypeByTypeID fetches a live blog type by its external id.
func (s *Service) GetTypeByTypeID(typeID string) (*models.BlogTypeModel, error) {
	var bt models.BlogTypeModel
	err := s.db.Where("type_id = ? AND is_deleted = ?", typeID, false).First(&bt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bt, nil
}

// UpdateBlogType patches a blog type by its external id.
func (s *Service) UpdateBlogType(typeID string, dto *UpdateBlogTypeDTO) (*models.BlogTypeModel, error) {
	bt, err := s.GetTypeByTypeID(typeID)
	if err != nil {
		return nil, err
	}
	if bt == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = sanitize.Text(*dto.Name)
	}
	if dto.Slug != nil {
		updates["slug"] = sanitize.Slug(*dto.Slug)
	}
	if dto.Description != nil {
		updates["description"] = sanitize.Text(*dto.Description)
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}

	if len(updates) == 0 {
		return bt, nil
	}
	if err := s.db.Model(bt).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.log.Info("blog type updated", zap.String("type_id", typeID))
	return bt, nil
}

// DeleteBlogType soft-deletes a blog type and cascades the soft delete to its
// live blogs. The type is read first so a missing type performs no writes;
// blogs go before the type so an interruption never leaves orphans behind a
// deleted type.
func (s *Service) DeleteBlogType(typeID string) (*CascadeDeleteResult, error) {
	bt, err := s.GetTypeByTypeID(typeID)
	if err != nil {
		return nil, err
	}
	if bt == nil {
		return nil, nil
	}

	var blogIDs []string
	if err := s.db.Model(&models.BlogModel{}).
		Where("type_id = ? AND is_deleted = ?", typeID, false).
		Pluck("blog_id", &blogIDs).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if len(blogIDs) > 0 {
		if err := s.db.Model(&models.BlogModel{}).
			Where("type_id = ? AND is_deleted = ?", typeID, false).
			Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now}).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(bt).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now}).Error; err != nil {
		return nil, err
	}

	if blogIDs == nil {
		blogIDs = []string{}
	}
	s.log.Info("blog type deleted",
		zap.String("type_id", typeID),
		zap.Int("cascaded_blogs", len(blogIDs)),
	)
	return &CascadeDeleteResult{
		BlogTypeDeleted:   true,
		BlogsDeletedCount: len(blogIDs),
		DeletedBlogIDs:    blogIDs,
	}, nil
}
