package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a PIX order
type OrderStatus string

const (
	// OrderStatusPending is set when the charge is created at the partner
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid is set by the payment webhook; an order never
	// transitions back to pending
	OrderStatusPaid OrderStatus = "paid"
)

// Order represents a PIX charge tracked for a single pedido id.
// There is at most one current row per pedido id: creating a new charge
// for the same id replaces the previous row.
type Order struct {
	PedidoID  string          `json:"pedido_id" db:"pedido_id"`
	TxID      string          `json:"txid" db:"txid"`
	Valor     decimal.Decimal `json:"valor" db:"valor"`
	Status    OrderStatus     `json:"status" db:"status"`
	PaidAt    *time.Time      `json:"paid_at" db:"paid_at"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
