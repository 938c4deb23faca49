package public

import (
	"github.com/ngocdev/portfolio-api/internal/http/handlers/shared"
	"github.com/ngocdev/portfolio-api/internal/http/response"
	"github.com/ngocdev/portfolio-api/internal/i18n"
	"github.com/ngocdev/portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSkills lists all skills in display order.
func (h *Handler) GetSkills(c *gin.Context) {
	lang := i18n.NormalizeOrDefault(c.Query("lang"))

	items, err := h.SkillService.List(lang)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.skill_fetch_failed", err)
		return
	}
	response.Success(c, items)
}

// GetSkillByID returns a single skill.
func (h *Handler) GetSkillByID(c *gin.Context) {
	lang := i18n.NormalizeOrDefault(c.Query("lang"))

	detail, err := h.SkillService.GetByID(c.Param("id"), lang)
	if err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.skill_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.skill_fetch_failed", err)
		return
	}
	response.Success(c, detail)
}

// GetSkillBySlug resolves a skill by its language-derived slug.
func (h *Handler) GetSkillBySlug(c *gin.Context) {
	lang := i18n.NormalizeOrDefault(c.Query("lang"))

	detail, err := h.SkillService.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.skill_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.skill_fetch_failed", err)
		return
	}
	response.Success(c, detail)
}
