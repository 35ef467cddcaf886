package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myhomesite/internal/service"
)

const galleryPlaceholder = "/static/image.png"

type galleryPayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	ImageWidth   int    `json:"image_width"`
	ImageHeight  int    `json:"image_height"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
}

func (p galleryPayload) toInput() service.GalleryInput {
	return service.GalleryInput{
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		ImageWidth:   p.ImageWidth,
		ImageHeight:  p.ImageHeight,
		Category:     p.Category,
		DisplayOrder: p.DisplayOrder,
	}
}

// ShowHome renders the one-page site. A gallery load failure degrades to the
// neutral empty state; it never takes the page down with it.
func (a *API) ShowHome(c *gin.Context) {
	items, err := a.galleries.ListOrdered()
	if err != nil {
		items = nil
	}

	settings, settingsErr := a.settings.GetSettings()
	if settingsErr != nil {
		c.Error(settingsErr)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":           "My Home Constructions",
		"items":           items,
		"placeholder":     galleryPlaceholder,
		"phone":           settings.BusinessPhone,
		"email":           settings.BusinessEmail,
		"serviceArea":     settings.ServiceArea,
		"aboutHTML":       a.settings.AboutHTML(settings),
		"conversionLabel": a.conversionLabel,
		"year":            time.Now().Year(),
	})
}

// GetGalleryImages returns all gallery images ascending by display order.
func (a *API) GetGalleryImages(c *gin.Context) {
	items, err := a.galleries.ListOrdered()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateGalleryImage creates a new gallery image.
func (a *API) CreateGalleryImage(c *gin.Context) {
	var payload galleryPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	item, err := a.galleries.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, "An image URL is required")
		case errors.Is(err, service.ErrGalleryCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Invalid gallery category")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create gallery image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image created", "item": item})
}

// UpdateGalleryImage updates an existing gallery image.
func (a *API) UpdateGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery image id")
		return
	}

	var payload galleryPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	item, err := a.galleries.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Gallery image not found")
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, "An image URL is required")
		case errors.Is(err, service.ErrGalleryCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Invalid gallery category")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update gallery image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image updated", "item": item})
}

// DeleteGalleryImage removes a gallery image.
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery image id")
		return
	}

	if err := a.galleries.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Gallery image not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete gallery image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted"})
}
