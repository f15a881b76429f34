package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmiks/portfolio-api/internal/server/services"
)

func (h *Handler) ListCertificates(c *gin.Context) {
	certs, err := h.certificates.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", certs)
}

func (h *Handler) GetCertificate(c *gin.Context) {
	cert, err := h.certificates.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", cert)
}

type certificateForm struct {
	Title string `form:"title" binding:"required"`
}

func (h *Handler) CreateCertificate(c *gin.Context) {
	var form certificateForm
	if err := c.ShouldBind(&form); err != nil {
		respondFailure(c, http.StatusBadRequest, "Title is required")
		return
	}

	image, err := formUpload(c, "certificateImage")
	if err != nil {
		h.respondError(c, err)
		return
	}

	cert, err := h.certificates.Create(c.Request.Context(), services.CertificateInput{
		Title: form.Title,
		Image: image,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Certificate created", cert)
}

func (h *Handler) UpdateCertificate(c *gin.Context) {
	var form certificateForm
	if err := c.ShouldBind(&form); err != nil {
		respondFailure(c, http.StatusBadRequest, "Title is required")
		return
	}

	image, err := formUpload(c, "certificateImage")
	if err != nil {
		h.respondError(c, err)
		return
	}

	cert, err := h.certificates.Update(c.Request.Context(), c.Param("id"), services.CertificateInput{
		Title: form.Title,
		Image: image,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Certificate updated", cert)
}

func (h *Handler) DeleteCertificate(c *gin.Context) {
	if err := h.certificates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Certificate deleted")
}
