package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	CORSOrigins []string
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler, log zerolog.Logger, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Cookie", headerSession, headerCSRF, headerUsername, headerRequestID},
		ExposeHeaders:    []string{"Content-Length", "Set-Cookie", headerRequestID},
		AllowCredentials: true,
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.POST("/login", h.Login)

	auth := api.Group("/")
	auth.Use(AuthMiddleware(log))
	{
		auth.GET("/vacancies", h.ListVacancies)

		auth.GET("/logs", h.ListActiveLogs)
		auth.GET("/logs/overlaps", h.ListOverlaps)
		auth.GET("/logs/:id", h.ListLogs)
		auth.POST("/logs/:id", h.CreateLog)
		auth.PUT("/logs/:id", h.UpdateLog)
		auth.DELETE("/logs/:id", h.DeleteLog)

		auth.POST("/finance", h.GetFinance)
		auth.GET("/finance/history", h.GetFinanceHistory)
		auth.GET("/finance/stats", h.GetFinanceStats)
	}

	return router
}
