package pagecontent

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/sanitize"
)

// Service handles page content business logic. Each page type is a singleton
// key: at most one live row per type.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Get returns the live content for a page type, or nil when none exists.
func (s *Service) Get(pageType models.PageType) (*models.PageContentModel, error) {
	var content models.PageContentModel
	err := s.db.Where("page_type = ? AND is_deleted = ?", pageType, false).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// GetAll lists live content for every page type.
func (s *Service) GetAll() ([]models.PageContentModel, error) {
	var contents []models.PageContentModel
	err := s.db.Where("is_deleted = ?", false).Order("page_type ASC").Find(&contents).Error
	return contents, err
}

// CreateOrUpdate merges the provided fields into the live row for the DTO's
// page type, creating it when absent.
func (s *Service) CreateOrUpdate(dto *UpsertPageContentDTO) (*models.PageContentModel, error) {
	existing, err := s.Get(dto.PageType)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		content := models.PageContentModel{
			PageContentID: uuid.New().String(),
			PageType:      dto.PageType,
		}
		applyContent(&content, dto)
		if err := s.db.Create(&content).Error; err != nil {
			return nil, err
		}
		s.log.Info("page content created", zap.String("page_type", string(dto.PageType)))
		return &content, nil
	}

	applyContent(existing, dto)
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	s.log.Info("page content updated", zap.String("page_type", string(dto.PageType)))
	return existing, nil
}

func applyContent(content *models.PageContentModel, dto *UpsertPageContentDTO) {
	if dto.Title != nil {
		content.Title = sanitize.Text(*dto.Title)
	}
	if dto.Slug != nil {
		content.Slug = sanitize.Slug(*dto.Slug)
	}
	if dto.Content != nil {
		content.Content = sanitize.HTML(*dto.Content)
	}
	if dto.Subtitle != nil {
		content.Subtitle = sanitize.Text(*dto.Subtitle)
	}
	if dto.Items != nil {
		items := make([]models.PageItem, len(dto.Items))
		for i, item := range dto.Items {
			items[i] = models.PageItem{
				Title:       sanitize.Text(item.Title),
				Description: sanitize.Text(item.Description),
			}
		}
		content.Items = items
	}
	if dto.Numbers != nil {
		numbers := make([]models.NumberItem, len(dto.Numbers))
		for i, n := range dto.Numbers {
			numbers[i] = models.NumberItem{
				Value: sanitize.Text(n.Value),
				Label: sanitize.Text(n.Label),
			}
		}
		content.Numbers = numbers
	}
	if dto.BtnTxt != nil {
		buttons := make([]models.ButtonText, len(dto.BtnTxt))
		for i, b := range dto.BtnTxt {
			buttons[i] = models.ButtonText{ButtonText: sanitize.Text(b.ButtonText)}
		}
		content.BtnTxt = buttons
	}
}
