package landing

import (
	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// Handler handles landing page HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts landing page routes onto the given router group. The
// lowercase path segments match the consumer frontend.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, writeMW gin.HandlerFunc) {
	landing := rg.Group("/landing")
	landing.GET("/getlandingpage", h.get)
	landing.POST("/createOrUpdatelandingpage", writeMW, h.createOrUpdate)
}

// get GET /landing/getlandingpage
func (h *Handler) get(c *gin.Context) {
	page, err := h.svc.Get()
	if err != nil {
		response.Error(c, err)
		return
	}
	if page == nil {
		response.NotFound(c, "No landing page found")
		return
	}
	response.OK(c, "Landing page retrieved successfully", page)
}

// createOrUpdate POST /landing/createOrUpdatelandingpage
func (h *Handler) createOrUpdate(c *gin.Context) {
	var dto UpsertLandingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.svc.CreateOrUpdate(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Landing page created or updated successfully", page)
}
