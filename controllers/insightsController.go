package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmaster/insights"
	"stockmaster/inventory"
	"stockmaster/store"
)

// recentInsightWindow is how many of the latest movements accompany the
// snapshot sent for analysis.
const recentInsightWindow = 10

// GenerateInsights hands a read-only snapshot to the text-generation boundary.
// The call never mutates store state and never fails hard: problems surface as
// a fixed fallback string in a normal 200 response.
func GenerateInsights(c *gin.Context) {
	txs := store.Transactions()
	recent := txs
	if len(recent) > recentInsightWindow {
		recent = recent[:recentInsightWindow]
	}

	text := insights.Analyze(c.Request.Context(), inventory.Aggregate(txs), recent)
	c.JSON(http.StatusOK, gin.H{"insight": text})
}
