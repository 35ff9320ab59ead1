package footer

import (
	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// Handler handles footer HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts footer routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	footer := rg.Group("/footer")
	footer.GET("/getFooter", h.get)
	footer.POST("/createOrUpdateFooter", h.createOrUpdate)
}

// get GET /footer/getFooter
func (h *Handler) get(c *gin.Context) {
	footer, err := h.svc.Get()
	if err != nil {
		response.Error(c, err)
		return
	}
	if footer == nil {
		response.NotFound(c, "No footer content found")
		return
	}
	response.OK(c, "Footer content retrieved successfully", footer)
}

// createOrUpdate POST /footer/createOrUpdateFooter
func (h *Handler) createOrUpdate(c *gin.Context) {
	var dto UpsertFooterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	footer, err := h.svc.CreateOrUpdate(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Footer content created or updated successfully", footer)
}
