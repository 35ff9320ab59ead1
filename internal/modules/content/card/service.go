package card

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/apperror"
	"github.com/solvex-capital/marketing-core/internal/pkg/sanitize"
)

// Service handles investment card business logic.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// GetAll lists live investment cards.
func (s *Service) GetAll() ([]models.InvestmentCardModel, error) {
	var cards []models.InvestmentCardModel
	err := s.db.Where("is_deleted = ?", false).Order("created_at ASC").Find(&cards).Error
	return cards, err
}

// GetByCardID fetches a live card by its external id.
func (s *Service) GetByCardID(cardID string) (*models.InvestmentCardModel, error) {
	return s.findByCardID(cardID, false)
}

func (s *Service) findByCardID(cardID string, includeDeleted bool) (*models.InvestmentCardModel, error) {
	tx := s.db.Where("card_id = ?", cardID)
	if !includeDeleted {
		tx = tx.Where("is_deleted = ?", false)
	}
	var card models.InvestmentCardModel
	if err := tx.First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// CreateOrUpdate upserts a card by external id. A payload carrying
// isDeleted=true with a cardId soft-deletes the live card instead. Updating a
// known cardId reaches soft-deleted cards too, so a delete can be reverted by
// a follow-up upsert of the same id.
func (s *Service) CreateOrUpdate(dto *UpsertCardDTO) (*models.InvestmentCardModel, error) {
	if dto.IsDeleted != nil && *dto.IsDeleted && dto.CardID != "" {
		return s.softDelete(dto.CardID)
	}

	sections, err := s.prepareSections(dto.Sections)
	if err != nil {
		return nil, err
	}

	if dto.CardID != "" {
		existing, err := s.findByCardID(dto.CardID, true)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if dto.CompanyName != nil {
				existing.CompanyName = sanitize.Text(*dto.CompanyName)
			}
			if dto.CompanyLogo != nil {
				existing.CompanyLogo = sanitize.Text(*dto.CompanyLogo)
			}
			if dto.Sections != nil {
				existing.Sections = sections
			}
			if dto.IsDeleted != nil {
				existing.IsDeleted = *dto.IsDeleted
				if !existing.IsDeleted {
					existing.DeletedAt = nil
				}
			}
			if err := s.db.Save(existing).Error; err != nil {
				return nil, err
			}
			s.log.Info("investment card updated", zap.String("card_id", existing.CardID))
			return existing, nil
		}
	}

	card := models.InvestmentCardModel{
		CardID:   dto.CardID,
		Sections: sections,
	}
	if card.CardID == "" {
		card.CardID = uuid.New().String()
	}
	if dto.CompanyName != nil {
		card.CompanyName = sanitize.Text(*dto.CompanyName)
	}
	if dto.CompanyLogo != nil {
		card.CompanyLogo = sanitize.Text(*dto.CompanyLogo)
	}

	if err := s.db.Create(&card).Error; err != nil {
		return nil, err
	}
	s.log.Info("investment card created", zap.String("card_id", card.CardID))
	return &card, nil
}

func (s *Service) softDelete(cardID string) (*models.InvestmentCardModel, error) {
	card, err := s.findByCardID(cardID, false)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.NotFound("Investment card not found: %s", cardID)
	}

	card.MarkDeleted(time.Now())
	if err := s.db.Save(card).Error; err != nil {
		return nil, err
	}
	s.log.Info("investment card deleted", zap.String("card_id", cardID))
	return card, nil
}

// prepareSections sanitizes section content, assigns missing section ids and
// rejects duplicate display orders within the card.
func (s *Service) prepareSections(sections []models.CardSection) ([]models.CardSection, error) {
	if sections == nil {
		return nil, nil
	}

	seenOrders := map[int]bool{}
	out := make([]models.CardSection, len(sections))
	for i, section := range sections {
		if section.Order < 0 {
			return nil, apperror.Validation("Section order must be at least 1")
		}
		if section.Order > 0 {
			if seenOrders[section.Order] {
				return nil, apperror.Validation("Section orders must be unique within a card")
			}
			seenOrders[section.Order] = true
		}

		if section.SectionID == "" {
			section.SectionID = uuid.New().String()
		}
		section.Title = sanitize.Text(section.Title)
		section.Content = sanitizeContent(section.Content)
		out[i] = section
	}
	return out, nil
}

// sanitizeContent sanitizes each arm of the section content union.
func sanitizeContent(content models.SectionContent) models.SectionContent {
	switch content.Kind {
	case models.SectionContentText:
		content.Text = sanitize.Text(content.Text)
	case models.SectionContentList:
		for i, item := range content.List {
			content.List[i] = sanitize.Text(item)
		}
	case models.SectionContentItems:
		for _, item := range content.Items {
			for key, value := range item {
				item[key] = sanitize.Text(value)
			}
		}
	case models.SectionContentObject:
		for key, value := range content.Object {
			content.Object[key] = sanitize.Text(value)
		}
	}
	return content
}
