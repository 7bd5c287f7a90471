package inventory

import (
	"sort"
	"strings"
	"time"

	"stockmaster/models"
)

// lowStockCeiling mirrors the dashboard alert rule: anything still on hand but
// below this many units is flagged.
const lowStockCeiling = 10

// Aggregate recomputes the current per-product snapshot from the full movement
// log. Entries may be backdated, so the log is sorted chronologically before
// folding; the valuation must reflect cost as of event time, not insertion
// time. The stored log is newest-first, so it is walked backwards first and
// the stable sort then keeps same-day movements in insertion order.
//
// Carry value follows moving-average costing: only IN movements shift the unit
// cost, OUT movements leave it untouched. Quantities may go negative; the
// oversell gate lives with the caller, not here.
func Aggregate(txs []models.Transaction) []models.InventoryItem {
	sorted := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		sorted[len(txs)-1-i] = tx
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date).Before(parseDate(sorted[j].Date))
	})

	items := make(map[string]*models.InventoryItem)
	for _, tx := range sorted {
		item, ok := items[tx.ProductName]
		if !ok {
			item = &models.InventoryItem{ProductName: tx.ProductName}
			items[tx.ProductName] = item
		}

		if tx.Type == models.TypeIn {
			oldValue := float64(item.TotalQuantity) * item.CarryValue
			newValue := float64(tx.Quantity) * tx.CarryPrice
			item.TotalQuantity += tx.Quantity
			item.TotalWeight += tx.Weight
			if item.TotalQuantity > 0 {
				item.CarryValue = (oldValue + newValue) / float64(item.TotalQuantity)
			} else {
				// guards the division when the balance is not positive
				item.CarryValue = tx.CarryPrice
			}
		} else {
			item.TotalQuantity -= tx.Quantity
			item.TotalWeight -= tx.Weight
		}
	}

	result := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ProductName < result[j].ProductName
	})
	return result
}

// Find looks up a product by exact, case-sensitive name.
func Find(items []models.InventoryItem, productName string) (models.InventoryItem, bool) {
	for _, item := range items {
		if item.ProductName == productName {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// LowStock returns items still on hand but below the alert ceiling.
func LowStock(items []models.InventoryItem) []models.InventoryItem {
	low := []models.InventoryItem{}
	for _, item := range items {
		if item.TotalQuantity > 0 && item.TotalQuantity < lowStockCeiling {
			low = append(low, item)
		}
	}
	return low
}

// PricePoint is one carry rate observed on a stock-in movement.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// PricePoints returns the carry rates of a product's IN movements in
// chronological order, for price-trend display.
func PricePoints(txs []models.Transaction, productName string) []PricePoint {
	var ins []models.Transaction
	for _, tx := range txs {
		if tx.ProductName == productName && tx.Type == models.TypeIn {
			ins = append(ins, tx)
		}
	}
	sort.SliceStable(ins, func(i, j int) bool {
		return parseDate(ins[i].Date).Before(parseDate(ins[j].Date))
	})

	points := make([]PricePoint, 0, len(ins))
	for _, tx := range ins {
		points = append(points, PricePoint{Date: tx.Date, Price: tx.CarryPrice})
	}
	return points
}

// CustomerSummaries aggregates the log by party. It shares the fold pattern
// with Aggregate but tracks quantities only; cost never enters the party view.
// The optional date range is inclusive on both ends and query matches party
// names case-insensitively. Results are ordered by activity, busiest first.
func CustomerSummaries(txs []models.Transaction, start, end, query string) []models.CustomerSummary {
	query = strings.ToLower(query)

	summaries := make(map[string]*models.CustomerSummary)
	var order []string
	for _, tx := range txs {
		if !WithinRange(tx.Date, start, end) {
			continue
		}
		s, ok := summaries[tx.CustomerName]
		if !ok {
			s = &models.CustomerSummary{Name: tx.CustomerName, LastActivity: tx.Date}
			summaries[tx.CustomerName] = s
			order = append(order, tx.CustomerName)
		}
		if tx.Type == models.TypeIn {
			s.TotalInQty += tx.Quantity
		} else {
			s.TotalOutQty += tx.Quantity
		}
		if parseDate(tx.Date).After(parseDate(s.LastActivity)) {
			s.LastActivity = tx.Date
		}
		s.TransactionCount++
	}

	result := make([]models.CustomerSummary, 0, len(order))
	for _, name := range order {
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		result = append(result, *summaries[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TransactionCount > result[j].TransactionCount
	})
	return result
}

// WithinRange reports whether date falls inside the inclusive [start, end]
// range. Empty bounds are open. ISO dates compare lexicographically, so plain
// string comparison is enough here.
func WithinRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

func parseDate(s string) time.Time {
	// malformed dates are a form-layer concern; zero time sorts first
	t, _ := time.Parse("2006-01-02", s)
	return t
}
