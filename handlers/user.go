package handlers

import (
	"net/http"

	"inventory-server/auth"
	"inventory-server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

func UserLogin(c *gin.Context) {
	r := UserLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, ok := models.UserLogin(c.Request.Context(), r.Email, r.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{"wrong email or password"})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.JSON(http.StatusOK, DataResponse{Message: "login successful", Data: user})
}

func GoogleLogin(c *gin.Context) {
	r := GoogleLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	identity, err := auth.VerifyGoogleToken(c.Request.Context(), r.Token)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	user, err := models.UserFindOrCreateFromIdentity(c.Request.Context(), identity)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.JSON(http.StatusOK, DataResponse{Message: "login successful", Data: user})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, Response{"logged out"})
}

func UserGetStatus(c *gin.Context) {
	user := auth.LoadSession(c).User()
	if user.ID == 0 {
		c.JSON(http.StatusUnauthorized, Response{"not logged in"})
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: user})
}

func UserList(c *gin.Context, user *models.User) {
	users, err := models.UserList(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: users})
}
