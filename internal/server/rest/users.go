package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmiks/portfolio-api/internal/server/services"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", users)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", user)
}

// EditProfile updates the authenticated owner's name, profile image and CV.
// The subject comes from the session, not from the request.
func (h *Handler) EditProfile(c *gin.Context) {
	name := c.PostForm("name")

	profile, err := formUpload(c, "profile")
	if err != nil {
		h.respondError(c, err)
		return
	}

	cv, err := formUpload(c, "cv")
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.EditProfile(c.Request.Context(), c.GetString(userIDKey), services.ProfileInput{
		Name:    name,
		Profile: profile,
		CV:      cv,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Profile updated", user)
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	if err := h.contact.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Message sent")
}
