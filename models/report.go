package models

// CustomerSummary aggregates the movement log by party instead of product.
type CustomerSummary struct {
	Name             string `json:"name"`
	TotalInQty       int    `json:"totalInQty"`
	TotalOutQty      int    `json:"totalOutQty"`
	LastActivity     string `json:"lastActivity"`
	TransactionCount int    `json:"transactionCount"`
}

type DashboardSummary struct {
	ProductCount  int `json:"product_count"`
	LowStockCount int `json:"low_stock_count"`
	TotalInQty    int `json:"total_in_qty"`
	TotalOutQty   int `json:"total_out_qty"`
	NetBalance    int `json:"net_balance"`
}
