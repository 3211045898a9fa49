package handlers

import (
	"net/http"
	"strconv"

	"inventory-server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func categoryID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, Response{"invalid category id"})
		return 0, false
	}
	return id, true
}

func CategoryList(c *gin.Context, user *models.User) {
	categories, err := models.CategoryList(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: categories})
}

func CategoryCreate(c *gin.Context, user *models.User) {
	r := CategoryRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	category, err := models.CategoryCreate(c.Request.Context(), r.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: category})
}

func CategoryRename(c *gin.Context, user *models.User) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	r := CategoryRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	category, err := models.CategoryRename(c.Request.Context(), id, r.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: category})
}

func CategoryDelete(c *gin.Context, user *models.User) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	category, err := models.CategoryDelete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: category})
}
