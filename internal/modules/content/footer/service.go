package footer

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/sanitize"
)

// Service handles footer business logic. The footer is a global singleton:
// createOrUpdate merges into the live row when one exists and creates it
// otherwise.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Get returns the live footer, or nil when none exists.
func (s *Service) Get() (*models.FooterModel, error) {
	var footer models.FooterModel
	err := s.db.Where("is_deleted = ?", false).First(&footer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &footer, nil
}

// CreateOrUpdate merges the provided fields into the live footer, creating it
// when absent. A concurrent first-create loser surfaces the unique-key error.
func (s *Service) CreateOrUpdate(dto *UpsertFooterDTO) (*models.FooterModel, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		footer := models.FooterModel{FooterID: uuid.New().String()}
		applyFooter(&footer, dto)
		if err := s.db.Create(&footer).Error; err != nil {
			return nil, err
		}
		s.log.Info("footer created", zap.String("footer_id", footer.FooterID))
		return &footer, nil
	}

	applyFooter(existing, dto)
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	s.log.Info("footer updated", zap.String("footer_id", existing.FooterID))
	return existing, nil
}

// applyFooter copies the provided DTO fields onto the model, sanitizing every
// text value.
func applyFooter(footer *models.FooterModel, dto *UpsertFooterDTO) {
	if dto.CompanyName != nil {
		footer.CompanyName = sanitize.Text(*dto.CompanyName)
	}
	if dto.CompanyDescription != nil {
		footer.CompanyDescription = sanitize.Text(*dto.CompanyDescription)
	}
	if dto.Contact != nil {
		footer.Contact = models.FooterContact{
			Email:   sanitize.Text(dto.Contact.Email),
			Phone:   sanitize.Text(dto.Contact.Phone),
			Address: sanitize.Text(dto.Contact.Address),
		}
	}
	if dto.Sections != nil {
		sections := make([]models.FooterSection, len(dto.Sections))
		for i, section := range dto.Sections {
			sections[i] = models.FooterSection{
				Title: sanitize.Text(section.Title),
				Links: sanitizeLinks(section.Links),
			}
		}
		footer.Sections = sections
	}
	if dto.SocialMedia != nil {
		social := make([]models.SocialMediaLink, len(dto.SocialMedia))
		for i, link := range dto.SocialMedia {
			social[i] = models.SocialMediaLink{
				Platform: sanitize.Text(link.Platform),
				URL:      sanitize.Text(link.URL),
				Icon:     sanitize.Text(link.Icon),
			}
		}
		footer.SocialMedia = social
	}
	if dto.BackToTopText != nil {
		footer.BackToTopText = sanitize.Text(*dto.BackToTopText)
	}
	if dto.CopyrightText != nil {
		footer.CopyrightText = sanitize.Text(*dto.CopyrightText)
	}
	if dto.LegalLinks != nil {
		footer.LegalLinks = sanitizeLinks(dto.LegalLinks)
	}
}

func sanitizeLinks(links []models.FooterLink) []models.FooterLink {
	out := make([]models.FooterLink, len(links))
	for i, link := range links {
		out[i] = models.FooterLink{
			Text: sanitize.Text(link.Text),
			URL:  sanitize.Text(link.URL),
		}
	}
	return out
}
