package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credentials, sets the accessToken cookie and returns
// the token in the body as well for non-browser clients.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.auth.TokenValidity().Seconds()))

	respondData(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// Logout clears the session cookie. Tokens stay stateless: an already issued
// token remains valid until it expires.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	respondMessage(c, http.StatusOK, "Logout successful")
}

// IsAuth confirms the session and returns the subject id.
func (h *Handler) IsAuth(c *gin.Context) {
	respondData(c, http.StatusOK, "Authorized", gin.H{"id": c.GetString(userIDKey)})
}

// setSessionCookie writes the accessToken cookie. The frontend is served
// from a different origin, so the cookie is SameSite=None and secure.
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(accessTokenCookie, token, maxAge, "/", "", true, true)
}
