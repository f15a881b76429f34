package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmiks/portfolio-api/internal/server/services"
)

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", skills)
}

func (h *Handler) GetSkill(c *gin.Context) {
	skill, err := h.skills.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", skill)
}

type skillForm struct {
	Name    string `form:"name" binding:"required"`
	LevelID string `form:"experienceLevelId" binding:"required"`
}

func (h *Handler) CreateSkill(c *gin.Context) {
	var form skillForm
	if err := c.ShouldBind(&form); err != nil {
		respondFailure(c, http.StatusBadRequest, "Name and experience level are required")
		return
	}

	icon, err := formUpload(c, "icon")
	if err != nil {
		h.respondError(c, err)
		return
	}

	skill, err := h.skills.Create(c.Request.Context(), services.SkillInput{
		Name:    form.Name,
		LevelID: form.LevelID,
		Icon:    icon,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Skill created", skill)
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	var form skillForm
	if err := c.ShouldBind(&form); err != nil {
		respondFailure(c, http.StatusBadRequest, "Name and experience level are required")
		return
	}

	icon, err := formUpload(c, "icon")
	if err != nil {
		h.respondError(c, err)
		return
	}

	skill, err := h.skills.Update(c.Request.Context(), c.Param("id"), services.SkillInput{
		Name:    form.Name,
		LevelID: form.LevelID,
		Icon:    icon,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Skill updated", skill)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	if err := h.skills.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Skill deleted")
}
