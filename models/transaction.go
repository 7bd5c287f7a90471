package models

// TransactionType marks the direction of a stock movement.
type TransactionType string

const (
	TypeIn  TransactionType = "IN"
	TypeOut TransactionType = "OUT"
)

// Transaction is one immutable stock movement. The log is append-only: once a
// record is written it is never modified or removed.
type Transaction struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"` // calendar date, YYYY-MM-DD
	CustomerName string          `json:"customerName"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	Weight       float64         `json:"weight"`
	CarryPrice   float64         `json:"carryPrice"`
	Remarks      string          `json:"remarks"`
	Type         TransactionType `json:"type"`
}

// TransactionRequest is the payload for a new stock movement entry. The
// identifier is assigned by the store, never by the caller.
type TransactionRequest struct {
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	CustomerName string  `json:"customerName" binding:"required"`
	ProductName  string  `json:"productName" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	Weight       float64 `json:"weight" binding:"omitempty,gte=0"`
	CarryPrice   float64 `json:"carryPrice" binding:"gte=0"`
	Remarks      string  `json:"remarks"`
	Type         string  `json:"type" binding:"required,oneof=IN OUT"`
}
