package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wakepress/internal/service"
)

// ShowGalleryAdmin renders the gallery admin page with all items, newest first.
func (a *API) ShowGalleryAdmin(c *gin.Context) {
	items, err := a.galleries.ListNewestFirst()
	if err != nil {
		a.log.WithError(err).Error("failed to load gallery items")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "addgallery.html", gin.H{
		"title":        a.cfg.SiteName,
		"galleryItems": items,
	})
}

// CreateGalleryItem persists a new gallery item from the submission form
// and re-renders the admin page with the refreshed newest-first list.
func (a *API) CreateGalleryItem(c *gin.Context) {
	imagePath, err := a.saveUpload(c, "image")
	if err != nil {
		a.log.WithError(err).Error("failed to store gallery image")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	_, err = a.galleries.Create(service.GalleryInput{
		Title:     c.PostForm("title"),
		Category:  c.PostForm("category"),
		Link:      c.PostForm("link"),
		BadgeName: c.PostForm("badgeName"),
		Image:     imagePath,
	})
	if err != nil {
		if errors.Is(err, service.ErrGalleryFieldsMissing) {
			a.renderErrorPage(c, http.StatusBadRequest, "Title and category are required")
			return
		}
		a.log.WithError(err).Error("failed to save gallery item")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	a.ShowGalleryAdmin(c)
}

// DeleteGalleryItem removes one gallery item and redirects back to the
// admin page. Unknown and malformed ids are both a 404.
func (a *API) DeleteGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderErrorPage(c, http.StatusNotFound, "Gallery item not found.")
		return
	}

	if err := a.galleries.Delete(id); err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			a.renderErrorPage(c, http.StatusNotFound, "Gallery item not found.")
			return
		}
		a.log.WithError(err).Error("failed to delete gallery item")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, "/addgallery")
}
