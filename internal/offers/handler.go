package offers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// publicOffer annotates an active offer with its countdown so the
// site can render the timer without recomputing expiry logic.
type publicOffer struct {
	*Offer
	Countdown    *Countdown `json:"countdown,omitempty"`
	ExpiringSoon bool       `json:"expiring_soon"`
}

//
// --------------------------------------------------
// GET /offers (public — active only, newest first)
// --------------------------------------------------
//

func (h *Handler) ListPublic(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	active := Active(all, now)

	items := make([]publicOffer, 0, len(active))
	for _, o := range active {
		item := publicOffer{
			Offer:        o,
			ExpiringSoon: ExpiringSoon(o.ExpiryDate, now),
		}
		if cd, ok := TimeRemaining(o.ExpiryDate, now); ok {
			item.Countdown = &cd
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"offers": items})
}

//
// --------------------------------------------------
// GET /admin/offers (expired included, for editing)
// --------------------------------------------------
//

func (h *Handler) ListAdmin(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if all == nil {
		all = []*Offer{}
	}
	c.JSON(http.StatusOK, gin.H{"offers": all})
}

//
// --------------------------------------------------
// POST /admin/offers + PUT /admin/offers/:id
// --------------------------------------------------
//

func (h *Handler) Create(c *gin.Context) {
	h.save(c, "")
}

func (h *Handler) Update(c *gin.Context) {
	h.save(c, c.Param("id"))
}

func (h *Handler) save(c *gin.Context, editingID string) {
	form := Form{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		ImageURL:    c.PostForm("image_url"),
		ExpiryDate:  c.PostForm("expiry_date"),
	}

	// image is optional
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	offer, err := h.service.Save(c.Request.Context(), form, editingID, image)
	if err != nil {
		respondError(c, err)
		return
	}

	if editingID != "" {
		c.JSON(http.StatusOK, gin.H{"message": "offer updated", "offer": offer})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "offer created", "offer": offer})
}

//
// --------------------------------------------------
// DELETE /admin/offers/:id
// --------------------------------------------------
//

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}

func respondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var uploadErr *UploadError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, ErrNotImage),
		errors.Is(err, ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &uploadErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
