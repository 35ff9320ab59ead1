package landing

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/apperror"
	"github.com/solvex-capital/marketing-core/internal/pkg/sanitize"
)

// Service handles landing page business logic. The landing page is a global
// singleton: partial input merges into an existing row, while a first-time
// create requires the full hero block.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Get returns the landing page, or nil when none exists.
func (s *Service) Get() (*models.LandingPageModel, error) {
	var page models.LandingPageModel
	err := s.db.First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// CreateOrUpdate merges the provided fields into the existing landing page.
// Creation requires header, subtitle and numbers together.
func (s *Service) CreateOrUpdate(dto *UpsertLandingDTO) (*models.LandingPageModel, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if dto.Header == nil || dto.Subtitle == nil || dto.Numbers == nil {
			return nil, apperror.Validation("header, subtitle and numbers are required to create the landing page")
		}
		page := models.LandingPageModel{
			Header:   sanitize.Text(*dto.Header),
			Subtitle: sanitize.Text(*dto.Subtitle),
			Numbers:  sanitizeNumbers(dto.Numbers),
		}
		if err := s.db.Create(&page).Error; err != nil {
			return nil, err
		}
		s.log.Info("landing page created", zap.String("header", page.Header))
		return &page, nil
	}

	if dto.Header != nil {
		existing.Header = sanitize.Text(*dto.Header)
	}
	if dto.Subtitle != nil {
		existing.Subtitle = sanitize.Text(*dto.Subtitle)
	}
	if dto.Numbers != nil {
		existing.Numbers = sanitizeNumbers(dto.Numbers)
	}
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	s.log.Info("landing page updated", zap.String("header", existing.Header))
	return existing, nil
}

func sanitizeNumbers(numbers []models.NumberItem) []models.NumberItem {
	out := make([]models.NumberItem, len(numbers))
	for i, n := range numbers {
		out[i] = models.NumberItem{
			Value: sanitize.Text(n.Value),
			Label: sanitize.Text(n.Label),
		}
	}
	return out
}
