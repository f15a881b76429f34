package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fahmiks/portfolio-api/internal/server/services"
)

// ListProjects returns one page of projects, newest first. Supported query
// parameters: page, limit, category (exact category name).
func (h *Handler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	category := c.Query("category")

	result, err := h.projects.List(c.Request.Context(), page, limit, category)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"error":      false,
		"data":       result.Items,
		"total":      result.Total,
		"page":       result.Page,
		"limit":      result.Limit,
		"totalPages": result.TotalPages,
	})
}

// GetProject looks up a project by slug. Slugs are stored lowercase, so the
// path parameter is folded before the lookup and mixed-case URLs still
// resolve.
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Request.Context(), strings.ToLower(c.Param("slug")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", project)
}

// projectForm is the multipart body shared by create and edit. Skills arrive
// as repeated skills[] fields holding skill ids.
type projectForm struct {
	Title          string   `form:"title" binding:"required"`
	Description    string   `form:"description"`
	CategoryID     string   `form:"categoryProjectId" binding:"required"`
	SkillIDs       []string `form:"skills[]"`
	LinkDemo       string   `form:"linkDemo"`
	LinkRepository string   `form:"linkRepository"`
}

func (h *Handler) CreateProject(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		respondFailure(c, http.StatusBadRequest, "Title and category are required")
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		h.respondError(c, err)
		return
	}

	project, err := h.projects.Create(c.Request.Context(), services.ProjectInput{
		Title:          form.Title,
		Description:    form.Description,
		CategoryID:     form.CategoryID,
		SkillIDs:       form.SkillIDs,
		LinkDemo:       form.LinkDemo,
		LinkRepository: form.LinkRepository,
		Image:          image,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Project created", project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		respondFailure(c, http.StatusBadRequest, "Title and category are required")
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		h.respondError(c, err)
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("slug"), services.ProjectInput{
		Title:          form.Title,
		Description:    form.Description,
		CategoryID:     form.CategoryID,
		SkillIDs:       form.SkillIDs,
		LinkDemo:       form.LinkDemo,
		LinkRepository: form.LinkRepository,
		Image:          image,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Project updated", project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Project deleted")
}
