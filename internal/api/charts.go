package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devkami/kami-sales-dashboard/internal/aggregate"
)

// Every chart endpoint takes the same filter body and answers 204 when the
// date range is incomplete: the widget keeps what it is showing.

// DailyChart feeds the daily net-value trend line.
// POST /api/charts/daily
func (h *Handler) DailyChart(c *gin.Context) {
	orders, ok := h.filteredSaleOrders(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, aggregate.DailySeries(orders))
}

// MonthlyChart feeds the monthly net-value trend line.
// POST /api/charts/monthly
func (h *Handler) MonthlyChart(c *gin.Context) {
	orders, ok := h.filteredSaleOrders(c)
	if !ok {
		return
	}
	points, mean := aggregate.MonthlySeries(orders)
	c.JSON(http.StatusOK, gin.H{"points": points, "mean": mean})
}

// BrandChart feeds the brand share-of-total breakdown.
// POST /api/charts/brands
func (h *Handler) BrandChart(c *gin.Context) {
	orders, ok := h.filteredSaleOrders(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": aggregate.BrandShare(orders)})
}

// SalespersonDailyChart feeds the per-salesperson daily lines plus the
// overall daily totals the widget overlays.
// POST /api/charts/salespeople/daily
func (h *Handler) SalespersonDailyChart(c *gin.Context) {
	orders, ok := h.filteredSaleOrders(c)
	if !ok {
		return
	}
	points, totals := aggregate.SalespersonDailySeries(orders)
	c.JSON(http.StatusOK, gin.H{"points": points, "totals": totals})
}

// SalespersonRanking feeds the top-salespeople ranking. The n query bounds
// the list; it defaults to the five the dashboard shows.
// POST /api/charts/salespeople/ranking?n=5
func (h *Handler) SalespersonRanking(c *gin.Context) {
	orders, ok := h.filteredSaleOrders(c)
	if !ok {
		return
	}
	n := 5
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}
	c.JSON(http.StatusOK, gin.H{"rows": aggregate.TopSalespeople(orders, n)})
}

// GetKPIs feeds the indicator cards: leading salesperson with the
// cross-salesperson mean as delta reference, average ticket, total sales.
// POST /api/kpis
func (h *Handler) GetKPIs(c *gin.Context) {
	orders, ok := h.filteredSaleOrders(c)
	if !ok {
		return
	}

	resp := gin.H{
		"averageTicket": aggregate.AverageTicket(orders),
		"totalSales":    aggregate.TotalSales(orders),
	}
	if leader, mean, found := aggregate.TopSalesperson(orders); found {
		resp["topSalesperson"] = leader
		resp["salespersonMean"] = mean
	}
	c.JSON(http.StatusOK, resp)
}
