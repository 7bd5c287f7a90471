package models

// InventoryItem is the derived per-product snapshot. It is recomputed from the
// full movement log on every read and never stored; it has no identity or
// lifecycle of its own. Grouping on ProductName is case-sensitive, so "Rice"
// and "rice" are tracked as two distinct products.
type InventoryItem struct {
	ProductName   string  `json:"productName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalWeight   float64 `json:"totalWeight"`
	CarryValue    float64 `json:"carryValue"`
}
