package admin

import (
	"github.com/ngocdev/portfolio-api/internal/http/handlers/shared"
	"github.com/ngocdev/portfolio-api/internal/http/response"
	"github.com/ngocdev/portfolio-api/internal/i18n"
	"github.com/ngocdev/portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createSkillRequest struct {
	TitleVI       string  `json:"title_vi" binding:"required"`
	TitleEN       string  `json:"title_en" binding:"required"`
	DescriptionVI string  `json:"description_vi" binding:"required"`
	DescriptionEN string  `json:"description_en" binding:"required"`
	IconURL       *string `json:"icon_url"`
	Highlighted   bool    `json:"highlighted"`
	DisplayOrder  int     `json:"display_order"`
}

type updateSkillRequest struct {
	TitleVI       *string `json:"title_vi"`
	TitleEN       *string `json:"title_en"`
	DescriptionVI *string `json:"description_vi"`
	DescriptionEN *string `json:"description_en"`
	IconURL       *string `json:"icon_url"`
	Highlighted   *bool   `json:"highlighted"`
	DisplayOrder  *int    `json:"display_order"`
}

// CreateSkill creates a skill entry.
func (h *Handler) CreateSkill(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	skill, err := h.SkillService.Create(service.CreateSkillInput{
		TitleVI:       req.TitleVI,
		TitleEN:       req.TitleEN,
		DescriptionVI: req.DescriptionVI,
		DescriptionEN: req.DescriptionEN,
		IconURL:       req.IconURL,
		Highlighted:   req.Highlighted,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.skill_create_failed", err)
		return
	}

	response.Created(c, skill)
}

// UpdateSkill applies a partial update to a skill.
func (h *Handler) UpdateSkill(c *gin.Context) {
	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	skill, err := h.SkillService.Update(c.Param("id"), service.UpdateSkillInput{
		TitleVI:       req.TitleVI,
		TitleEN:       req.TitleEN,
		DescriptionVI: req.DescriptionVI,
		DescriptionEN: req.DescriptionEN,
		IconURL:       req.IconURL,
		Highlighted:   req.Highlighted,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.skill_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.skill_update_failed", err)
		return
	}

	response.Success(c, skill)
}

// DeleteSkill removes a skill.
func (h *Handler) DeleteSkill(c *gin.Context) {
	if err := h.SkillService.Delete(c.Param("id")); err != nil {
		if err == service.ErrNotFound {
			shared.RespondError(c, response.CodeNotFound, "error.skill_not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.skill_delete_failed", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, gin.H{"message": i18n.T(locale, "error.skill_deleted")})
}
