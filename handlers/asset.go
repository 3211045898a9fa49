package handlers

import (
	"net/http"
	"strconv"

	"inventory-server/media"
	"inventory-server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AssetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func assetID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, Response{"invalid asset id"})
		return 0, false
	}
	return id, true
}

func AssetList(c *gin.Context, user *models.User) {
	// Malformed pagination falls back to defaults inside the parser,
	// the listing never hard-fails on bad query input
	opts := models.ParseAssetListOptions(c.Request.URL.Query())
	assets, total, err := models.AssetList(c.Request.Context(), opts)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, AssetListResponse{
		Total: total,
		Page:  opts.Page,
		Limit: opts.Limit,
		Count: len(assets),
		Data:  assets,
	})
}

func AssetCreate(c *gin.Context, user *models.User) {
	in := models.AssetInput{}
	if err := c.ShouldBindWith(&in, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	asset, err := models.AssetCreate(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: asset})
}

func AssetUpdate(c *gin.Context, user *models.User) {
	id, ok := assetID(c)
	if !ok {
		return
	}
	in := models.AssetInput{}
	if err := c.ShouldBindWith(&in, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	asset, replacedImage, err := models.AssetUpdate(c.Request.Context(), id, in)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	// The superseded handle is targeted for deletion exactly once; the row
	// already carries the new one, so a remote failure is only logged
	media.DeleteRemote(c.Request.Context(), replacedImage)
	c.JSON(http.StatusOK, DataResponse{Data: asset})
}

func AssetPatchStatus(c *gin.Context, user *models.User) {
	id, ok := assetID(c)
	if !ok {
		return
	}
	r := AssetStatusRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	asset, err := models.AssetUpdateStatus(c.Request.Context(), id, r.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: asset})
}

func AssetDelete(c *gin.Context, user *models.User) {
	id, ok := assetID(c)
	if !ok {
		return
	}
	imagePublicID, err := models.AssetDelete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	// Row deletion is authoritative; the remote image delete is best-effort
	media.DeleteRemote(c.Request.Context(), imagePublicID)
	c.JSON(http.StatusOK, Response{"asset deleted"})
}

func DashboardStats(c *gin.Context, user *models.User) {
	stats, err := models.GetDashboardStats(c.Request.Context(), nil)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
