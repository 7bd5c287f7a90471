package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmaster/inventory"
	"stockmaster/models"
	"stockmaster/store"
)

// GetDashboardSummary aggregates the headline stats: distinct products, low
// stock count, and total quantities received and issued across the whole log.
func GetDashboardSummary(c *gin.Context) {
	txs := store.Transactions()
	items := inventory.Aggregate(txs)

	var totalIn, totalOut int
	for _, tx := range txs {
		if tx.Type == models.TypeIn {
			totalIn += tx.Quantity
		} else {
			totalOut += tx.Quantity
		}
	}

	c.JSON(http.StatusOK, models.DashboardSummary{
		ProductCount:  len(items),
		LowStockCount: len(inventory.LowStock(items)),
		TotalInQty:    totalIn,
		TotalOutQty:   totalOut,
		NetBalance:    totalIn - totalOut,
	})
}
