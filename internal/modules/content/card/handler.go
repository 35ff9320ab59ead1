package card

import (
	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// Handler handles investment card HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts investment card routes onto the given router group.
// Card writes share the page-content rate-limit bucket.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, writeMW gin.HandlerFunc) {
	cards := rg.Group("/cards")
	cards.GET("/getAllInvestmentCards", h.getAll)
	cards.GET("/getInvestmentCardById", h.getByID)
	cards.POST("/createOrUpdateInvestmentCard", writeMW, h.createOrUpdate)
}

// getAll GET /cards/getAllInvestmentCards
func (h *Handler) getAll(c *gin.Context) {
	cards, err := h.svc.GetAll()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Investment cards retrieved successfully", cards)
}

// getByID GET /cards/getInvestmentCardById
func (h *Handler) getByID(c *gin.Context) {
	cardID := c.Query("cardId")
	if cardID == "" {
		response.BadRequest(c, "Card ID is required")
		return
	}

	card, err := h.svc.GetByCardID(cardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if card == nil {
		response.NotFound(c, "Investment card not found")
		return
	}
	response.OK(c, "Investment card retrieved successfully", card)
}

// createOrUpdate POST /cards/createOrUpdateInvestmentCard
func (h *Handler) createOrUpdate(c *gin.Context) {
	var dto UpsertCardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	card, err := h.svc.CreateOrUpdate(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Investment card created or updated successfully", card)
}
