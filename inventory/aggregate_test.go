package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stockmaster/models"
)

func in(date, product string, qty int, price float64) models.Transaction {
	return models.Transaction{
		Date:         date,
		CustomerName: "Supplier A",
		ProductName:  product,
		Quantity:     qty,
		CarryPrice:   price,
		Type:         models.TypeIn,
	}
}

func out(date, product string, qty int) models.Transaction {
	return models.Transaction{
		Date:         date,
		CustomerName: "Buyer B",
		ProductName:  product,
		Quantity:     qty,
		Type:         models.TypeOut,
	}
}

// prepend mimics the store: newest entry first.
func prepend(txs ...models.Transaction) []models.Transaction {
	log := []models.Transaction{}
	for _, tx := range txs {
		log = append([]models.Transaction{tx}, log...)
	}
	return log
}

func TestAggregateWeightedAverage(t *testing.T) {
	items := Aggregate(prepend(
		in("2024-01-01", "Rice", 10, 100),
		in("2024-01-02", "Rice", 10, 200),
	))

	require.Len(t, items, 1)
	require.Equal(t, 20, items[0].TotalQuantity)
	require.InDelta(t, 150.0, items[0].CarryValue, 0.0001)
}

func TestAggregateOutKeepsCarryValue(t *testing.T) {
	items := Aggregate(prepend(
		in("2024-01-01", "Rice", 10, 100),
		out("2024-01-02", "Rice", 4),
	))

	require.Len(t, items, 1)
	require.Equal(t, 6, items[0].TotalQuantity)
	require.InDelta(t, 100.0, items[0].CarryValue, 0.0001)
}

func TestAggregateBackdatedEntryResorts(t *testing.T) {
	// Jan-10 entry appended first, Jan-1 entry backdated afterwards: the
	// result must match chronological entry.
	backdated := Aggregate(prepend(
		in("2024-01-10", "Rice", 5, 50),
		in("2024-01-01", "Rice", 5, 10),
	))
	chronological := Aggregate(prepend(
		in("2024-01-01", "Rice", 5, 10),
		in("2024-01-10", "Rice", 5, 50),
	))

	require.Equal(t, chronological, backdated)
	require.Len(t, backdated, 1)
	require.Equal(t, 10, backdated[0].TotalQuantity)
	require.InDelta(t, 30.0, backdated[0].CarryValue, 0.0001)
}

func TestAggregateZeroBalanceResetsCarryValue(t *testing.T) {
	items := Aggregate(prepend(
		in("2024-01-01", "Rice", 5, 100),
		out("2024-01-02", "Rice", 5),
		in("2024-01-03", "Rice", 3, 80),
	))

	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].TotalQuantity)
	require.InDelta(t, 80.0, items[0].CarryValue, 0.0001)
}

func TestAggregateFallbackOnNonPositiveBalance(t *testing.T) {
	// drive the balance negative, then receive: division guard kicks in
	items := Aggregate(prepend(
		out("2024-01-01", "Rice", 5),
		in("2024-01-02", "Rice", 2, 60),
	))

	require.Len(t, items, 1)
	require.Equal(t, -3, items[0].TotalQuantity)
	require.InDelta(t, 60.0, items[0].CarryValue, 0.0001)
}

func TestAggregateNegativeBalanceRepresentable(t *testing.T) {
	items := Aggregate(prepend(out("2024-01-01", "Rice", 4)))

	require.Len(t, items, 1)
	require.Equal(t, -4, items[0].TotalQuantity)
}

func TestAggregateCaseSensitiveGrouping(t *testing.T) {
	items := Aggregate(prepend(
		in("2024-01-01", "Salt", 5, 10),
		in("2024-01-01", "salt", 7, 20),
	))

	require.Len(t, items, 2)

	upper, ok := Find(items, "Salt")
	require.True(t, ok)
	require.Equal(t, 5, upper.TotalQuantity)

	lower, ok := Find(items, "salt")
	require.True(t, ok)
	require.Equal(t, 7, lower.TotalQuantity)
}

func TestAggregateIdempotent(t *testing.T) {
	log := prepend(
		in("2024-01-01", "Rice", 10, 100),
		out("2024-01-03", "Rice", 2),
		in("2024-01-02", "Wheat", 4, 55.5),
	)

	require.Equal(t, Aggregate(log), Aggregate(log))
}

func TestAggregateSameDateInsertionOrderIndependent(t *testing.T) {
	a := in("2024-01-01", "Rice", 10, 100)
	b := in("2024-01-01", "Rice", 10, 200)

	require.Equal(t, Aggregate(prepend(a, b)), Aggregate(prepend(b, a)))
}

func TestAggregateWeightAccumulation(t *testing.T) {
	first := in("2024-01-01", "Rice", 10, 100)
	first.Weight = 25.5
	second := out("2024-01-02", "Rice", 4)
	second.Weight = 10.0

	items := Aggregate(prepend(first, second))
	require.Len(t, items, 1)
	require.InDelta(t, 15.5, items[0].TotalWeight, 0.0001)
}

func TestAggregateEmptyLog(t *testing.T) {
	require.Empty(t, Aggregate(nil))
}

func TestFindIsCaseSensitive(t *testing.T) {
	items := Aggregate(prepend(in("2024-01-01", "Rice", 10, 100)))

	_, ok := Find(items, "rice")
	require.False(t, ok)
}

func TestLowStockBounds(t *testing.T) {
	items := []models.InventoryItem{
		{ProductName: "Zero", TotalQuantity: 0},
		{ProductName: "One", TotalQuantity: 1},
		{ProductName: "Nine", TotalQuantity: 9},
		{ProductName: "Ten", TotalQuantity: 10},
		{ProductName: "Negative", TotalQuantity: -2},
	}

	low := LowStock(items)
	require.Len(t, low, 2)
	require.Equal(t, "One", low[0].ProductName)
	require.Equal(t, "Nine", low[1].ProductName)
}

func TestPricePoints(t *testing.T) {
	points := PricePoints(prepend(
		in("2024-01-05", "Rice", 10, 120),
		out("2024-01-06", "Rice", 2),
		in("2024-01-01", "Rice", 5, 100),
		in("2024-01-03", "Wheat", 7, 999),
	), "Rice")

	require.Len(t, points, 2)
	require.Equal(t, PricePoint{Date: "2024-01-01", Price: 100}, points[0])
	require.Equal(t, PricePoint{Date: "2024-01-05", Price: 120}, points[1])
}

func TestCustomerSummaries(t *testing.T) {
	rice := in("2024-01-01", "Rice", 10, 100)
	rice.CustomerName = "Acme"
	wheat := out("2024-01-05", "Wheat", 3)
	wheat.CustomerName = "Acme"
	salt := in("2024-01-02", "Salt", 4, 20)
	salt.CustomerName = "Globex"

	summaries := CustomerSummaries(prepend(rice, wheat, salt), "", "", "")
	require.Len(t, summaries, 2)

	// busiest party first
	require.Equal(t, "Acme", summaries[0].Name)
	require.Equal(t, 10, summaries[0].TotalInQty)
	require.Equal(t, 3, summaries[0].TotalOutQty)
	require.Equal(t, 2, summaries[0].TransactionCount)
	require.Equal(t, "2024-01-05", summaries[0].LastActivity)

	require.Equal(t, "Globex", summaries[1].Name)
	require.Equal(t, 4, summaries[1].TotalInQty)
}

func TestCustomerSummariesDateAndQueryFilters(t *testing.T) {
	early := in("2024-01-01", "Rice", 10, 100)
	early.CustomerName = "Acme"
	late := in("2024-02-01", "Rice", 5, 100)
	late.CustomerName = "Globex"

	byDate := CustomerSummaries(prepend(early, late), "2024-01-15", "", "")
	require.Len(t, byDate, 1)
	require.Equal(t, "Globex", byDate[0].Name)

	byQuery := CustomerSummaries(prepend(early, late), "", "", "acm")
	require.Len(t, byQuery, 1)
	require.Equal(t, "Acme", byQuery[0].Name)
}

func TestWithinRange(t *testing.T) {
	require.True(t, WithinRange("2024-01-10", "", ""))
	require.True(t, WithinRange("2024-01-10", "2024-01-10", "2024-01-10"))
	require.False(t, WithinRange("2024-01-09", "2024-01-10", ""))
	require.False(t, WithinRange("2024-01-11", "", "2024-01-10"))
}
