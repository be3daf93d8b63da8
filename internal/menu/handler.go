package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /admin/menu — upload/replace the menu PDF
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	url, err := h.service.Publish(c.Request.Context(), file, header)
	if err != nil {
		if errors.Is(err, ErrNotPDF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "menu published",
		"url":     url,
	})
}

// --------------------------------------------------
// GET /menu — public URL of the current menu
// --------------------------------------------------
func (h *Handler) Current(c *gin.Context) {
	url, err := h.service.CurrentURL(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no menu published"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
