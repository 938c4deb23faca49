package admin

import (
	"github.com/ngocdev/portfolio-api/internal/http/handlers/shared"
	"github.com/ngocdev/portfolio-api/internal/http/response"
	"github.com/ngocdev/portfolio-api/internal/i18n"
	"github.com/ngocdev/portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createTagRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// CreateTag creates a tag, deriving the slug from the name when none
// is given.
func (h *Handler) CreateTag(c *gin.Context) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	tag, err := h.BlogService.CreateTag(service.CreateTagInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		if err == service.ErrTagExists {
			shared.RespondError(c, response.CodeBadRequest, "error.tag_exists", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.tag_create_failed", err)
		return
	}

	response.Created(c, tag)
}

// DeleteTag removes a tag and detaches it from all posts.
func (h *Handler) DeleteTag(c *gin.Context) {
	if err := h.BlogService.DeleteTag(c.Param("id")); err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.tag_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.tag_delete_failed", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, gin.H{"message": i18n.T(locale, "error.tag_deleted")})
}
