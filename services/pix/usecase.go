package pix

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// PixUseCase defines the interface for PIX charge use cases
type PixUseCase interface {
	// CreateCharge creates (or short-circuits) a PIX charge for the
	// given raw pedido id. Returns ErrInvalidPedidoID for ids that are
	// not email-shaped.
	CreateCharge(ctx context.Context, rawPedidoID string, valor decimal.Decimal) (*models.ChargeResult, error)

	// HandlePaymentNotification reconciles a partner payment webhook.
	// A payload without a txid is a no-op.
	HandlePaymentNotification(ctx context.Context, payload *models.WebhookPayload) error

	// GetOrderStatus returns the stored order for the given raw pedido
	// id, or nil when no order exists.
	GetOrderStatus(ctx context.Context, rawPedidoID string) (*models.Order, error)
}
