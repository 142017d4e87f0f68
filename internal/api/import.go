package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/importer"
)

type importRequest struct {
	FilePath      string `json:"filePath"`
	ClearExisting bool   `json:"clearExisting"`
}

// Import ingests an order-line file into the store and refreshes the
// snapshot so the new rows are visible immediately.
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.FilePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filePath is required"})
		return
	}
	if _, err := os.Stat(req.FilePath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not found: " + filepath.Base(req.FilePath)})
		return
	}

	report, err := h.importer.ImportSync(importer.ImportOptions{
		FilePath:      req.FilePath,
		ClearExisting: req.ClearExisting,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.holder.Refresh()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":   report,
		"snapshot": statusOf(snap),
	})
}
