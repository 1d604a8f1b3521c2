package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Store, cfg.Version)
	booksController := NewBooksController(cfg.Store, cfg.History)
	librariesController := NewLibrariesController(cfg.Store)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if cfg.MetricsPath != "" {
		router.GET(cfg.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	// Books API endpoints
	router.GET("/api/books", booksController.GetBooks)
	router.GET("/api/books/:id", booksController.GetBook)
	router.GET("/api/books/:id/placements", booksController.GetPlacements)
	router.GET("/api/books/:id/shelves", booksController.GetShelves)
	router.GET("/api/genres", booksController.GetGenres)

	// Cabinet and shelf endpoints
	router.GET("/api/libraries", librariesController.GetLibraries)
	router.GET("/api/libraries/:id", librariesController.GetLibrary)
	router.GET("/api/libraries/:id/insights", librariesController.GetInsights)
	router.GET("/api/shelves/:id", librariesController.GetShelf)

	if cfg.PlacementService != nil {
		placementsController := NewPlacementsController(cfg.PlacementService)
		router.POST("/api/placements/:id/move", placementsController.Move)
	}

	// Move journal endpoints
	if cfg.History != nil {
		historyController := NewHistoryController(cfg.History)
		router.GET("/api/history", historyController.GetMoves)
		router.GET("/api/books/:id/history", booksController.GetHistory)
	}

	return router
}
