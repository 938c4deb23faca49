package admin

import (
	"time"

	"github.com/ngocdev/portfolio-api/internal/http/handlers/shared"
	"github.com/ngocdev/portfolio-api/internal/http/response"
	"github.com/ngocdev/portfolio-api/internal/i18n"
	"github.com/ngocdev/portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createBlogPostRequest struct {
	TitleVI       string     `json:"title_vi" binding:"required"`
	TitleEN       string     `json:"title_en" binding:"required"`
	Slug          string     `json:"slug"`
	ContentVI     string     `json:"content_vi" binding:"required"`
	ContentEN     string     `json:"content_en" binding:"required"`
	ExcerptVI     *string    `json:"excerpt_vi"`
	ExcerptEN     *string    `json:"excerpt_en"`
	FeaturedImage *string    `json:"featured_image"`
	Author        string     `json:"author" binding:"required"`
	PublishedAt   *time.Time `json:"published_at"`
	Status        string     `json:"status"`
	TagIDs        []string   `json:"tag_ids"`
}

type updateBlogPostRequest struct {
	TitleVI       *string    `json:"title_vi"`
	TitleEN       *string    `json:"title_en"`
	Slug          *string    `json:"slug"`
	ContentVI     *string    `json:"content_vi"`
	ContentEN     *string    `json:"content_en"`
	ExcerptVI     *string    `json:"excerpt_vi"`
	ExcerptEN     *string    `json:"excerpt_en"`
	FeaturedImage *string    `json:"featured_image"`
	Author        *string    `json:"author"`
	PublishedAt   *time.Time `json:"published_at"`
	Status        *string    `json:"status"`
	TagIDs        *[]string  `json:"tag_ids"`
}

// CreateBlogPost creates a post, deriving the slug from the
// Vietnamese title when none is given.
func (h *Handler) CreateBlogPost(c *gin.Context) {
	var req createBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.BlogService.Create(service.CreateBlogInput{
		TitleVI:       req.TitleVI,
		TitleEN:       req.TitleEN,
		Slug:          req.Slug,
		ContentVI:     req.ContentVI,
		ContentEN:     req.ContentEN,
		ExcerptVI:     req.ExcerptVI,
		ExcerptEN:     req.ExcerptEN,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		PublishedAt:   req.PublishedAt,
		Status:        req.Status,
		TagIDs:        req.TagIDs,
	})
	if err != nil {
		h.respondBlogWriteError(c, err, "error.post_create_failed")
		return
	}

	response.Created(c, post)
}

// UpdateBlogPost applies a partial update to a post.
func (h *Handler) UpdateBlogPost(c *gin.Context) {
	var req updateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.BlogService.Update(c.Param("id"), service.UpdateBlogInput{
		TitleVI:       req.TitleVI,
		TitleEN:       req.TitleEN,
		Slug:          req.Slug,
		ContentVI:     req.ContentVI,
		ContentEN:     req.ContentEN,
		ExcerptVI:     req.ExcerptVI,
		ExcerptEN:     req.ExcerptEN,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		PublishedAt:   req.PublishedAt,
		Status:        req.Status,
		TagIDs:        req.TagIDs,
	})
	if err != nil {
		h.respondBlogWriteError(c, err, "error.post_update_failed")
		return
	}

	response.Success(c, post)
}

// DeleteBlogPost hard-deletes a post.
func (h *Handler) DeleteBlogPost(c *gin.Context) {
	if err := h.BlogService.Delete(c.Param("id")); err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.post_delete_failed", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, gin.H{"message": i18n.T(locale, "error.post_deleted")})
}

func (h *Handler) respondBlogWriteError(c *gin.Context, err error, fallbackKey string) {
	switch err {
	case service.ErrNotFound:
		shared.RespondError(c, response.CodeNotFound, "error.post_not_found", nil)
	case service.ErrSlugExists:
		shared.RespondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case service.ErrInvalidStatus:
		shared.RespondError(c, response.CodeBadRequest, "error.status_invalid", nil)
	case service.ErrTagNotFound:
		shared.RespondError(c, response.CodeBadRequest, "error.tag_not_found", nil)
	default:
		shared.RespondError(c, response.CodeInternal, fallbackKey, err)
	}
}
