package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stockmaster/inventory"
	"stockmaster/models"
	"stockmaster/store"
)

// GetInventory returns the derived snapshot, recomputed from the full log on
// every call.
func GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, inventory.Aggregate(store.Transactions()))
}

// GetLowStockAlerts returns products still on hand but below the alert ceiling.
func GetLowStockAlerts(c *gin.Context) {
	items := inventory.Aggregate(store.Transactions())
	c.JSON(http.StatusOK, inventory.LowStock(items))
}

// GetProductDetail returns one product's snapshot entry together with its
// movement history (newest first) and the carry-rate trend of its stock-ins.
func GetProductDetail(c *gin.Context) {
	name := c.Query("product")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product parameter"})
		return
	}

	txs := store.Transactions()
	item, ok := inventory.Find(inventory.Aggregate(txs), name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	history := []models.Transaction{}
	for _, tx := range txs {
		if tx.ProductName == name {
			history = append(history, tx)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"item":        item,
		"history":     history,
		"pricePoints": inventory.PricePoints(txs, name),
	})
}

// ExportInventoryCSV serializes the current snapshot as a CSV download, one
// row per product. Export is read-side only; there is no import path.
func ExportInventoryCSV(c *gin.Context) {
	items := inventory.Aggregate(store.Transactions())

	filename := fmt.Sprintf("inventory_snapshot_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Product", "Remaining Stock", "Total Weight", "Carry Value (Unit)"})
	for _, item := range items {
		_ = w.Write([]string{
			item.ProductName,
			strconv.Itoa(item.TotalQuantity),
			strconv.FormatFloat(item.TotalWeight, 'f', 2, 64),
			strconv.FormatFloat(item.CarryValue, 'f', 2, 64),
		})
	}
	w.Flush()
}
