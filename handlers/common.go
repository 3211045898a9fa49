package handlers

import (
	"errors"
	"log"
	"net/http"

	"inventory-server/models"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Message string `json:"message"`
}

type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// AssetListResponse is the paginated listing envelope: total is the full
// match count, count the number of rows on this page.
type AssetListResponse struct {
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Count int            `json:"count"`
	Data  []models.Asset `json:"data"`
}

// AbortWithError maps the error taxonomy to HTTP statuses. Anything
// untyped is a store/internal failure: logged in full, returned generic.
func AbortWithError(c *gin.Context, err error) {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, Response{validation.Message})
		return
	}
	var conflict *models.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, Response{conflict.Message})
		return
	}
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, Response{notFound.Message})
		return
	}
	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, Response{upstream.Message})
		return
	}
	log.Printf("Internal error: %v", err)
	c.JSON(http.StatusInternalServerError, Response{"unexpected server error"})
}
