package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"inventory-server/auth"
	"inventory-server/config"
	"inventory-server/db"
	"inventory-server/handlers"
	"inventory-server/media"
	"inventory-server/models"
	"inventory-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "session_token"
	sessionExpirationTime = 7 * 86400 // 1 week
)

func main() {
	db.Init()
	models.Init()
	media.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime, HttpOnly: true})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.TimeoutMiddleware(config.DBTimeout()))

	// Healthcheck
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Auth handlers
	router.POST("/auth/login", handlers.UserLogin)
	router.POST("/auth/google", handlers.GoogleLogin)
	router.GET("/auth/status", handlers.UserGetStatus)

	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	authRouter.POST("/auth/logout", handlers.UserLogout)
	// Asset handlers
	authRouter.GET("/assets", handlers.AssetList)
	authRouter.POST("/assets", handlers.AssetCreate)
	authRouter.GET("/assets/dashboard-stats", handlers.DashboardStats)
	authRouter.POST("/assets/upload", handlers.UploadImage)
	authRouter.PUT("/assets/:id", handlers.AssetUpdate)
	authRouter.PATCH("/assets/:id", handlers.AssetPatchStatus)
	authRouter.DELETE("/assets/:id", handlers.AssetDelete)
	// Category handlers
	authRouter.GET("/categories", handlers.CategoryList)
	authRouter.POST("/categories", handlers.CategoryCreate)
	authRouter.PUT("/categories/:id", handlers.CategoryRename)
	authRouter.DELETE("/categories/:id", handlers.CategoryDelete)
	// User handlers
	authRouter.GET("/users", handlers.UserList)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
