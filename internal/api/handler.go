// Package api exposes the dashboard's data surface over HTTP: snapshot
// status and refresh, file import, filter option lists, filtered chart
// feeds, the per-customer master table and its exports.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/aggregate"
	"github.com/devkami/kami-sales-dashboard/internal/config"
	"github.com/devkami/kami-sales-dashboard/internal/dataset"
	"github.com/devkami/kami-sales-dashboard/internal/exporter"
	"github.com/devkami/kami-sales-dashboard/internal/filter"
	"github.com/devkami/kami-sales-dashboard/internal/importer"
	"github.com/devkami/kami-sales-dashboard/internal/model"
	"github.com/devkami/kami-sales-dashboard/internal/store"
)

// Handler serves the dashboard API.
type Handler struct {
	store     *store.Store
	holder    *dataset.Holder
	importer  *importer.Coordinator
	exportDir string
	downloads *exporter.DownloadStore

	// mu guards cfg and sets: UpdateConfig rewrites both while chart and
	// master handlers read them from concurrent requests.
	mu   sync.RWMutex
	cfg  *config.AppConfig
	sets model.CodeSets
}

// NewHandler creates the API handler. exportDir receives prepared export
// files until their download token expires.
func NewHandler(st *store.Store, holder *dataset.Holder, cfg *config.AppConfig, exportDir string) *Handler {
	sale, trousseau, subsidized := cfg.Business.CodeSetLists()
	return &Handler{
		store:     st,
		holder:    holder,
		importer:  importer.NewCoordinator(st),
		cfg:       cfg,
		sets:      model.NewCodeSets(sale, trousseau, subsidized),
		exportDir: exportDir,
		downloads: exporter.NewDownloadStore(),
	}
}

// codeSets returns the active classifier. The sets behind the returned value
// are replaced wholesale on config updates, never mutated in place.
func (h *Handler) codeSets() model.CodeSets {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sets
}

// business returns a copy of the current business settings. Its maps and
// slices are replaced wholesale on config updates, never mutated in place.
func (h *Handler) business() config.BusinessConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.Business
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Snapshot lifecycle
	router.GET("/status", h.GetStatus)
	router.POST("/refresh", h.Refresh)

	// Data import
	router.POST("/import", h.Import)

	// Business configuration
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// Filter option lists
	router.GET("/options", h.GetOptions)
	router.GET("/dimensions", h.GetDimensions)

	// Chart feeds (filtered sale orders)
	router.POST("/charts/daily", h.DailyChart)
	router.POST("/charts/monthly", h.MonthlyChart)
	router.POST("/charts/brands", h.BrandChart)
	router.POST("/charts/salespeople/daily", h.SalespersonDailyChart)
	router.POST("/charts/salespeople/ranking", h.SalespersonRanking)
	router.POST("/kpis", h.GetKPIs)

	// Master table and exports
	router.GET("/master", h.GetMaster)
	router.POST("/master/export", h.ExportMaster)
	router.GET("/export/download/:token", h.DownloadExport)
}

// filterRequest is the common chart request body: the four categorical
// selections plus the mandatory date range. Selection keys match the source
// column names the UI already uses; the sentinel value 0 (or an empty list)
// means "no restriction".
type filterRequest struct {
	Salespeople []int    `json:"cod_colaborador"`
	Companies   []int    `json:"empresa_nota_fiscal"`
	States      []string `json:"uf"`
	Sectors     []string `json:"ramo_atividade"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

// criteria converts the request into filter criteria. Unset or unparsable
// dates stay zero so the filter reports the period as not ready.
func (r filterRequest) criteria() model.FilterCriteria {
	criteria := model.FilterCriteria{
		Salespeople: r.Salespeople,
		Companies:   r.Companies,
		States:      r.States,
		Sectors:     r.Sectors,
	}
	if t, ok := filter.ParseInvoiceDate(r.StartDate); ok {
		criteria.StartDate = t
	}
	if t, ok := filter.ParseInvoiceDate(r.EndDate); ok {
		criteria.EndDate = t
	}
	return criteria
}

// filteredSaleOrders binds the chart request and resolves it against the
// current snapshot's sale orders. An incomplete date range answers 204 (the
// widget keeps its previous state); binding errors answer 400. The bool
// reports whether the caller should continue.
func (h *Handler) filteredSaleOrders(c *gin.Context) ([]model.Order, bool) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}

	snap := h.holder.Current()
	sales := aggregate.FilterByCategory(snap.Orders, model.CategorySale, h.codeSets())

	filtered, err := filter.Apply(sales, req.criteria())
	if err != nil {
		c.Status(http.StatusNoContent)
		return nil, false
	}
	return filtered, true
}

// snapshotStatus is the status payload shared by GetStatus and Refresh.
type snapshotStatus struct {
	SnapshotID string    `json:"snapshotId"`
	LoadedAt   time.Time `json:"loadedAt"`
	LineCount  int       `json:"lineCount"`
	OrderCount int       `json:"orderCount"`
}

func statusOf(snap *dataset.Snapshot) snapshotStatus {
	return snapshotStatus{
		SnapshotID: snap.ID,
		LoadedAt:   snap.LoadedAt,
		LineCount:  len(snap.Lines),
		OrderCount: len(snap.Orders),
	}
}

// GetStatus reports the active snapshot.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap := h.holder.Current()
	stored, err := h.store.CountOrderLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"initialized": snap.ID != "",
		"snapshot":    statusOf(snap),
		"storedLines": stored,
	})
}

// Refresh rebuilds the snapshot from the store.
// POST /api/refresh
func (h *Handler) Refresh(c *gin.Context) {
	snap, err := h.holder.Refresh()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": statusOf(snap)})
}
