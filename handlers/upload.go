package handlers

import (
	"errors"
	"io"
	"net/http"

	"inventory-server/media"
	"inventory-server/models"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 20 << 20 // 20 MB

// UploadImage forwards the multipart "image" field to the media store and
// returns the new opaque handle pair. Nothing is persisted locally; the
// client attaches the handle to an asset in a follow-up create/update.
func UploadImage(c *gin.Context, user *models.User) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"no image provided"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, Response{"image too large"})
		return
	}
	store := media.Get()
	if store == nil {
		AbortWithError(c, &models.UpstreamError{Message: "media store is not configured"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"unreadable image"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"unreadable image"})
		return
	}
	result, err := store.Upload(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		// Undecodable payloads are the client's fault; everything else is
		// a store failure
		if errors.Is(err, media.ErrBadImage) {
			AbortWithError(c, &models.ValidationError{Message: "unsupported or corrupt image"})
			return
		}
		AbortWithError(c, &models.UpstreamError{Message: "image upload failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}
