package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/options"
)

// GetOptions returns the filter option lists derived from the current
// snapshot. With no query the response carries every dimension; the dims
// query narrows it to a comma-separated subset of dimension keys.
// GET /api/options?dims=salesperson,uf
func (h *Handler) GetOptions(c *gin.Context) {
	snap := h.holder.Current()
	companies := h.business().CompanyNames()

	dims := c.Query("dims")
	if dims == "" {
		c.JSON(http.StatusOK, gin.H{
			"snapshotId": snap.ID,
			"options":    options.All(snap.Orders, companies),
		})
		return
	}

	keys := strings.Split(dims, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshotId": snap.ID,
		"options":    options.ForDimensions(snap.Orders, companies, keys),
	})
}

// GetDimensions lists the dimension keys with their display labels, so the
// UI can build its selector chrome without hardcoding the mapping.
// GET /api/dimensions
func (h *Handler) GetDimensions(c *gin.Context) {
	keys := []string{
		options.DimMonth, options.DimYear,
		options.DimSalesperson, options.DimBranch,
		options.DimUF, options.DimCity, options.DimDistrict,
		options.DimStatus,
		options.DimSubProductGroup, options.DimProductGroup, options.DimBrand,
		options.DimCompany,
	}
	items := make([]gin.H, 0, len(keys))
	for _, key := range keys {
		items = append(items, gin.H{"key": key, "label": options.LabelForDimension(key)})
	}
	c.JSON(http.StatusOK, gin.H{"dimensions": items})
}
