package transport

import (
	"net/http"
	"time"

	"github.com/ds124wfegd/flagcomposer/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	Timeout        time.Duration
	MaxUploadBytes int64
}

func InitRoutes(flagHandler *FlagHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())
	if opts.MaxUploadBytes > 0 {
		router.Use(middleware.BodyLimit(opts.MaxUploadBytes))
	}
	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.POST("/combine", flagHandler.Combine)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "flagcomposer",
		})
	})
	return router
}
