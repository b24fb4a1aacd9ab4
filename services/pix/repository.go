package pix

import (
	"context"
	"time"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// OrderRepo defines the interface for order store operations
type OrderRepo interface {
	// GetByPedidoID returns the current order for a pedido id, or
	// (nil, nil) when no row exists.
	GetByPedidoID(ctx context.Context, pedidoID string) (*models.Order, error)

	// Upsert inserts or fully replaces the row for the order's pedido id.
	Upsert(ctx context.Context, order *models.Order) error

	// UpdateStatusByTxID updates zero or one row matching the txid.
	// A zero-row match is a silent no-op, not an error.
	UpdateStatusByTxID(ctx context.Context, txid string, status models.OrderStatus, paidAt time.Time) error
}
