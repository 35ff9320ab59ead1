package pagecontent

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// Handler handles page content HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts page content routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, writeMW gin.HandlerFunc) {
	page := rg.Group("/page")
	page.GET("/getPageContent", h.get)
	page.GET("/getAllPageContent", h.getAll)
	page.POST("/createOrUpdatePageContent", writeMW, h.createOrUpdate)
}

func validTypesList() string {
	names := make([]string, len(models.PageTypes))
	for i, t := range models.PageTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// get GET /page/getPageContent?pageType=...
func (h *Handler) get(c *gin.Context) {
	pageType := models.PageType(c.Query("pageType"))
	if pageType == "" {
		response.BadRequest(c, "Page type is required")
		return
	}
	if !pageType.Valid() {
		response.BadRequest(c, "Invalid page type. Valid types are: "+validTypesList())
		return
	}

	content, err := h.svc.Get(pageType)
	if err != nil {
		response.Error(c, err)
		return
	}
	if content == nil {
		response.NotFound(c, fmt.Sprintf("No %s page content found", pageType))
		return
	}
	response.OK(c, fmt.Sprintf("%s page content retrieved successfully", pageType), content)
}

// getAll GET /page/getAllPageContent
func (h *Handler) getAll(c *gin.Context) {
	contents, err := h.svc.GetAll()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "All page content retrieved successfully", contents)
}

// createOrUpdate POST /page/createOrUpdatePageContent
func (h *Handler) createOrUpdate(c *gin.Context) {
	var dto UpsertPageContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	content, err := h.svc.CreateOrUpdate(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("%s page content created or updated successfully", dto.PageType), content)
}
