// Package server wires the store, the snapshot holder and the API handler
// into one HTTP server. The dashboard UI is served separately; this binary
// only exposes the data API.
package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/api"
	"github.com/devkami/kami-sales-dashboard/internal/config"
	"github.com/devkami/kami-sales-dashboard/internal/dataset"
	"github.com/devkami/kami-sales-dashboard/internal/model"
	"github.com/devkami/kami-sales-dashboard/internal/store"
)

// Server is the HTTP server around the dashboard API.
type Server struct {
	router *gin.Engine
	store  *store.Store
	holder *dataset.Holder
	api    *api.Handler
}

// NewServer creates the server: opens the SQLite cache under the data
// directory, builds the snapshot holder over it and registers the API.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "salesdash.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Rows before the starting year never reach a snapshot; the all-time
	// window starts there.
	startingYear := cfg.Business.StartingYear
	holder := dataset.NewHolder(func() ([]model.OrderLine, error) {
		return sqliteStore.LoadOrderLines(store.OrderLineQueryOptions{MinYear: &startingYear})
	})

	handler := api.NewHandler(sqliteStore, holder, cfg, filepath.Join(dataDir, "exports"))

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		holder: holder,
		api:    handler,
	}
	s.setupRoutes()
	return s
}

// setupRoutes sets up middleware and the API group.
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store (used by the startup seed path and tests).
func (s *Server) GetStore() *store.Store {
	return s.store
}

// GetHolder exposes the snapshot holder (used by the startup seed path).
func (s *Server) GetHolder() *dataset.Holder {
	return s.holder
}
