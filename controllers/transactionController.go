package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"stockmaster/inventory"
	"stockmaster/models"
	"stockmaster/store"
)

// CreateStockTransaction appends a movement to the log. The store itself
// accepts any well-formed record; the consumer-side checks live here: the
// binding enforces a positive quantity and a valid date, and OUT movements
// must not exceed the current balance, looked up by exact, case-sensitive
// product name.
func CreateStockTransaction(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := models.Transaction{
		Date:         req.Date,
		CustomerName: strings.TrimSpace(req.CustomerName),
		ProductName:  strings.TrimSpace(req.ProductName),
		Quantity:     req.Quantity,
		Weight:       req.Weight,
		CarryPrice:   req.CarryPrice,
		Remarks:      req.Remarks,
		Type:         models.TransactionType(req.Type),
	}

	if tx.Type == models.TypeOut {
		items := inventory.Aggregate(store.Transactions())
		item, ok := inventory.Find(items, tx.ProductName)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found in current balance."})
			return
		}
		if item.TotalQuantity < tx.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Insufficient stock. Available: %d", item.TotalQuantity)})
			return
		}
	}

	saved, err := store.AppendTransaction(tx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListStockTransactions returns the raw log, newest first. Filtering is a
// view-layer concern, so it happens here and never inside the store.
func ListStockTransactions(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if !validDateParams(c, start, end) {
		return
	}

	txType := c.Query("type")
	customer := c.Query("customer")
	product := c.Query("product")
	q := strings.ToLower(c.Query("q"))

	result := []models.Transaction{}
	for _, tx := range store.Transactions() {
		if txType != "" && string(tx.Type) != txType {
			continue
		}
		if customer != "" && tx.CustomerName != customer {
			continue
		}
		if product != "" && tx.ProductName != product {
			continue
		}
		if !inventory.WithinRange(tx.Date, start, end) {
			continue
		}
		if q != "" && !matchesQuery(tx, q) {
			continue
		}
		result = append(result, tx)
	}

	c.JSON(http.StatusOK, result)
}

func matchesQuery(tx models.Transaction, q string) bool {
	return strings.Contains(strings.ToLower(tx.CustomerName), q) ||
		strings.Contains(strings.ToLower(tx.ProductName), q) ||
		strings.Contains(strings.ToLower(tx.Remarks), q)
}

// validDateParams rejects malformed start/end query dates with a 400. It
// reports whether the request may proceed.
func validDateParams(c *gin.Context, dates ...string) bool {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return false
		}
	}
	return true
}
