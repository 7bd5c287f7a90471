package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"stockmaster/inventory"
	"stockmaster/models"
	"stockmaster/store"
)

// GetCustomerReport returns per-party quantity summaries, busiest party first.
func GetCustomerReport(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if !validDateParams(c, start, end) {
		return
	}

	summaries := inventory.CustomerSummaries(store.Transactions(), start, end, c.Query("q"))
	c.JSON(http.StatusOK, summaries)
}

// ExportCustomerReportCSV serializes the party summaries as a CSV download.
func ExportCustomerReportCSV(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if !validDateParams(c, start, end) {
		return
	}

	summaries := inventory.CustomerSummaries(store.Transactions(), start, end, c.Query("q"))

	filename := fmt.Sprintf("customer_qty_report_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Customer Name", "Total Qty Received (IN)", "Total Qty Issued (OUT)", "Transactions Count", "Net Qty Balance"})
	for _, s := range summaries {
		_ = w.Write([]string{
			s.Name,
			strconv.Itoa(s.TotalInQty),
			strconv.Itoa(s.TotalOutQty),
			strconv.Itoa(s.TransactionCount),
			strconv.Itoa(s.TotalInQty - s.TotalOutQty),
		})
	}
	w.Flush()
}

// GetCustomerDetail returns one party's movement slice, newest first, within
// the optional date range. Party names match exactly, like product grouping.
func GetCustomerDetail(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name parameter"})
		return
	}
	start := c.Query("start")
	end := c.Query("end")
	if !validDateParams(c, start, end) {
		return
	}

	c.JSON(http.StatusOK, customerSlice(name, start, end))
}

// ExportCustomerDetailCSV serializes one party's movement slice as CSV.
func ExportCustomerDetailCSV(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name parameter"})
		return
	}
	start := c.Query("start")
	end := c.Query("end")
	if !validDateParams(c, start, end) {
		return
	}

	filename := strings.Join(strings.Fields(name), "_") + "_detailed_qty_log.csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Product", "Type", "Quantity", "Carry Rate (INR)", "Remarks"})
	for _, tx := range customerSlice(name, start, end) {
		_ = w.Write([]string{
			tx.Date,
			tx.ProductName,
			string(tx.Type),
			strconv.Itoa(tx.Quantity),
			strconv.FormatFloat(tx.CarryPrice, 'f', -1, 64),
			tx.Remarks,
		})
	}
	w.Flush()
}

func customerSlice(name, start, end string) []models.Transaction {
	result := []models.Transaction{}
	for _, tx := range store.Transactions() {
		if tx.CustomerName != name {
			continue
		}
		if !inventory.WithinRange(tx.Date, start, end) {
			continue
		}
		result = append(result, tx)
	}
	return result
}
