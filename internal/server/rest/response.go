// Package rest exposes the portfolio API over HTTP using gin. Handlers bind
// requests, call the service layer, and translate sentinel errors into the
// response envelope the frontend expects.
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmiks/portfolio-api/internal/common"
)

// envelope is the uniform response body. Failures carry success=false,
// error=true and a message; successes carry the payload under data.
type envelope struct {
	Success bool   `json:"success"`
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{Success: true, Error: false, Message: message, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: true, Error: false, Message: message})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Error: true, Message: message})
}

// respondError maps service errors to HTTP statuses. Unknown errors surface
// as a generic message; the details stay in the server log.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		respondFailure(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrMissingToken):
		respondFailure(c, http.StatusUnauthorized, "Not authorized, no token")
	case errors.Is(err, common.ErrTokenExpired):
		respondFailure(c, http.StatusUnauthorized, "Session expired, please login again")
	case errors.Is(err, common.ErrInvalidToken):
		respondFailure(c, http.StatusUnauthorized, "Not authorized, token failed")
	case errors.Is(err, common.ErrorNotFound):
		respondFailure(c, http.StatusNotFound, "Data not found")
	case errors.Is(err, common.ErrInvalidAsset):
		respondFailure(c, http.StatusBadRequest, assetMessage(err))
	default:
		h.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		respondFailure(c, http.StatusInternalServerError, "Internal server error")
	}
}

// assetMessage unwraps the client-facing validation reason from an
// ErrInvalidAsset chain.
func assetMessage(err error) string {
	msg := err.Error()
	prefix := common.ErrInvalidAsset.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return "Invalid file"
}
