package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/aggregate"
	"github.com/devkami/kami-sales-dashboard/internal/exporter"
)

// downloadTTL bounds how long a prepared export stays claimable.
const downloadTTL = 10 * time.Minute

// GetMaster returns the per-customer master table built from the current
// snapshot.
// GET /api/master
func (h *Handler) GetMaster(c *gin.Context) {
	snap := h.holder.Current()
	master := aggregate.BuildMaster(snap.Lines, h.codeSets(), h.business().StartingYear, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"snapshotId": snap.ID,
		"master":     master,
	})
}

type exportRequest struct {
	Format string `json:"format"` // csv or xlsx
}

// ExportMaster writes the master table to the export directory and returns
// an expiring download token for it.
// POST /api/master/export
func (h *Handler) ExportMaster(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap := h.holder.Current()
	master := aggregate.BuildMaster(snap.Lines, h.codeSets(), h.business().StartingYear, time.Now())

	stamp := time.Now().Format("20060102-150405")
	var filename string
	var write func(path string) error
	switch req.Format {
	case "csv":
		filename = fmt.Sprintf("master-%s.csv", stamp)
		write = func(path string) error { return exporter.WriteCSV(master, path) }
	case "xlsx":
		filename = fmt.Sprintf("master-%s.xlsx", stamp)
		write = func(path string) error { return exporter.WriteXLSX(master, path) }
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}

	path := filepath.Join(h.exportDir, filename)
	if err := write(path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token := h.downloads.Put(path, filename, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"url":      "/api/export/download/" + token,
	})
}

// DownloadExport serves a prepared export file. Tokens are single-use.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	download, ok := h.downloads.Get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}
	h.downloads.Delete(token)
	c.FileAttachment(download.FilePath, download.Filename)
}
