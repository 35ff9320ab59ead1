package blog

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/pkg/pagination"
	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts blog routes onto the given router group. Write routes
// carry their own rate-limit categories on top of the general limiter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, blogWriteMW, typeWriteMW gin.HandlerFunc) {
	blogs := rg.Group("/blog")

	blogs.GET("/getTypesWithBlogs", h.getTypesWithBlogs)
	blogs.GET("/getBlogsByType", h.getBlogsByType)
	blogs.GET("/getBlogByBlogId", h.getBlogByBlogID)
	blogs.GET("/getBlogBySlug", h.getBlogBySlug)
	blogs.GET("/getBlogTypes", h.getBlogTypes)
	blogs.GET("/searchBlogs", h.searchBlogs)

	blogs.POST("/createBlog", blogWriteMW, h.createBlog)
	blogs.POST("/updateBlog", blogWriteMW, h.updateBlog)
	blogs.POST("/deleteBlog", blogWriteMW, h.deleteBlog)

	blogs.POST("/createBlogType", typeWriteMW, h.createBlogType)
	blogs.POST("/updateBlogType", typeWriteMW, h.updateBlogType)
	blogs.POST("/deleteBlogType", typeWriteMW, h.deleteBlogType)
}

func isAdminMode(c *gin.Context) bool {
	return c.Query("admin") == "true"
}

// getTypesWithBlogs GET /blog/getTypesWithBlogs
func (h *Handler) getTypesWithBlogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	isAdmin := isAdminMode(c)

	result, err := h.svc.GetTypesWithBlogs(limit, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	mode := ""
	if isAdmin {
		mode = " (admin mode - includes unpublished)"
	}
	response.OK(c, "Types with blogs retrieved successfully"+mode, result)
}

// getBlogsByType GET /blog/getBlogsByType
func (h *Handler) getBlogsByType(c *gin.Context) {
	typeID := c.Query("typeId")
	if typeID == "" {
		response.BadRequest(c, "Type ID is required")
		return
	}
	q := pagination.FromContext(c)

	blogs, pag, err := h.svc.GetBlogsByType(typeID, q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Blogs retrieved successfully", gin.H{
		"blogs":      blogs,
		"total":      pag.Total,
		"totalPages": pag.TotalPages,
		"page":       pag.Page,
		"limit":      pag.Limit,
	})
}

// getBlogByBlogID GET /blog/getBlogByBlogId
func (h *Handler) getBlogByBlogID(c *gin.Context) {
	blogID := c.Query("blogId")
	if blogID == "" {
		response.BadRequest(c, "Blog ID is required")
		return
	}
	isAdmin := isAdminMode(c)

	blog, err := h.svc.GetByBlogID(blogID, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	mode := ""
	if isAdmin {
		mode = " (admin mode)"
	}
	if blog == nil {
		response.NotFound(c, "Blog not found"+mode)
		return
	}

	if !isAdmin {
		if err := h.svc.IncrementViewCount(blog.BlogID); err == nil {
			blog.ViewCount++
		}
	}
	response.OK(c, "Blog retrieved successfully"+mode, blog)
}

// getBlogBySlug GET /blog/getBlogBySlug
func (h *Handler) getBlogBySlug(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		response.BadRequest(c, "Slug is required")
		return
	}
	isAdmin := isAdminMode(c)

	blog, err := h.svc.GetBySlug(slug, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	if blog == nil {
		response.NotFound(c, "Blog not found")
		return
	}

	if !isAdmin {
		if err := h.svc.IncrementViewCount(blog.BlogID); err == nil {
			blog.ViewCount++
		}
	}
	response.OK(c, "Blog retrieved successfully", blog)
}

// searchBlogs GET /blog/searchBlogs
func (h *Handler) searchBlogs(c *gin.Context) {
	term := c.Query("search")
	if term == "" {
		response.BadRequest(c, "Search term is required")
		return
	}
	q := pagination.FromContext(c)

	blogs, pag, err := h.svc.Search(term, q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Blogs retrieved successfully", gin.H{
		"blogs":      blogs,
		"total":      pag.Total,
		"totalPages": pag.TotalPages,
		"page":       pag.Page,
		"limit":      pag.Limit,
	})
}

// getBlogTypes GET /blog/getBlogTypes
func (h *Handler) getBlogTypes(c *gin.Context) {
	types, err := h.svc.GetActiveTypes()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Blog types retrieved successfully", types)
}

// createBlog POST /blog/createBlog
func (h *Handler) createBlog(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	blog, err := h.svc.CreateBlog(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Blog created successfully", blog)
}

// updateBlog POST /blog/updateBlog?blogId=...
func (h *Handler) updateBlog(c *gin.Context) {
	blogID := c.Query("blogId")
	if blogID == "" {
		response.BadRequest(c, "Blog ID is required")
		return
	}

	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	blog, err := h.svc.UpdateBlog(blogID, &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if blog == nil {
		response.NotFound(c, "Blog not found or could not be updated")
		return
	}
	response.OK(c, "Blog updated successfully", blog)
}

// deleteBlog POST /blog/deleteBlog?blogId=...
func (h *Handler) deleteBlog(c *gin.Context) {
	blogID := c.Query("blogId")
	if blogID == "" {
		response.BadRequest(c, "Blog ID is required")
		return
	}

	deleted, err := h.svc.DeleteBlog(blogID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Blog not found or already deleted")
		return
	}
	response.OK(c, "Blog deleted successfully", gin.H{"blogId": blogID})
}

// createBlogType POST /blog/createBlogType
func (h *Handler) createBlogType(c *gin.Context) {
	var dto CreateBlogTypeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	bt, err := h.svc.CreateBlogType(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Blog type created successfully", bt)
}

// updateBlogType POST /blog/updateBlogType?typeId=...
func (h *Handler) updateBlogType(c *gin.Context) {
	typeID := c.Query("typeId")
	if typeID == "" {
		response.BadRequest(c, "Type ID is required")
		return
	}

	var dto UpdateBlogTypeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, err)
		return
	}

	bt, err := h.svc.UpdateBlogType(typeID, &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if bt == nil {
		response.NotFound(c, "Blog type not found or could not be updated")
		return
	}
	response.OK(c, "Blog type updated successfully", bt)
}

// deleteBlogType POST /blog/deleteBlogType?typeId=...
func (h *Handler) deleteBlogType(c *gin.Context) {
	typeID := c.Query("typeId")
	if typeID == "" {
		response.BadRequest(c, "Type ID is required")
		return
	}

	result, err := h.svc.DeleteBlogType(typeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.NotFound(c, "Blog type not found or already deleted")
		return
	}

	message := "Blog type deleted successfully (no associated blogs found)"
	if n := len(result.DeletedBlogIDs); n > 0 {
		message = fmt.Sprintf("Blog type and %d associated blogs deleted successfully", n)
	}
	response.OK(c, message, result)
}
