package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/config"
	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// GetConfig returns the business settings the UI can manage.
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"business": h.business()})
}

type updateConfigRequest struct {
	StartingYear   *int              `json:"starting_year"`
	SaleNops       []string          `json:"sale_nops"`
	TrousseauNops  []string          `json:"trousseau_nops"`
	SubsidizedNops []string          `json:"subsidized_nops"`
	Companies      map[string]string `json:"companies"`
}

// UpdateConfig patches the business settings, persists them and rebuilds the
// code-set classifier so the change applies to the next aggregation. Fields
// are assigned wholesale, never mutated, so readers holding a pre-update
// copy stay consistent.
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.StartingYear != nil && *req.StartingYear < 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starting_year out of range"})
		return
	}

	h.mu.Lock()
	if req.StartingYear != nil {
		h.cfg.Business.StartingYear = *req.StartingYear
	}
	if req.SaleNops != nil {
		h.cfg.Business.SaleNops = req.SaleNops
	}
	if req.TrousseauNops != nil {
		h.cfg.Business.TrousseauNops = req.TrousseauNops
	}
	if req.SubsidizedNops != nil {
		h.cfg.Business.SubsidizedNops = req.SubsidizedNops
	}
	if req.Companies != nil {
		h.cfg.Business.Companies = req.Companies
	}

	sale, trousseau, subsidized := h.cfg.Business.CodeSetLists()
	h.sets = model.NewCodeSets(sale, trousseau, subsidized)

	err := config.SaveConfig(h.cfg)
	business := h.cfg.Business
	h.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"business": business})
}
