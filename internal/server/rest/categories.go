package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", categories)
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Name is required")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Category created", category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Name is required")
		return
	}

	category, err := h.categories.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Category updated", category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Category deleted")
}

func (h *Handler) ListLevels(c *gin.Context) {
	levels, err := h.levels.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", levels)
}
