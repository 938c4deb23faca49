package public

import (
	"strconv"

	"github.com/ngocdev/portfolio-api/internal/http/handlers/shared"
	"github.com/ngocdev/portfolio-api/internal/http/response"
	"github.com/ngocdev/portfolio-api/internal/i18n"
	"github.com/ngocdev/portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetBlogPosts lists published posts with pagination, optional tag
// and search filters, and a sort order.
func (h *Handler) GetBlogPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = shared.NormalizePagination(page, limit)

	input := service.ListBlogInput{
		Page:   page,
		Limit:  limit,
		Tag:    c.Query("tag"),
		Lang:   i18n.NormalizeOrDefault(c.Query("lang")),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	items, total, err := h.BlogService.List(input)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, items, response.NewPagination(page, limit, total))
}

// GetBlogPostBySlug returns the detail view of a published post and
// bumps its view counter.
func (h *Handler) GetBlogPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	lang := i18n.NormalizeOrDefault(c.Query("lang"))

	detail, err := h.BlogService.GetBySlug(slug, lang)
	if err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.Success(c, detail)
}

// GetBlogTags lists all tags.
func (h *Handler) GetBlogTags(c *gin.Context) {
	tags, err := h.BlogService.ListTags()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.tag_fetch_failed", err)
		return
	}
	response.Success(c, tags)
}
