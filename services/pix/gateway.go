package pix

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// InterGateway defines the interface for Banco Inter API operations
type InterGateway interface {
	// GetAccessToken exchanges client credentials for a bearer token
	// over the mutual-TLS channel. Tokens are fetched fresh on every
	// charge creation; nothing is cached.
	GetAccessToken(ctx context.Context) (string, error)

	// CreateCharge registers an immediate PIX charge (cob) and returns
	// the partner-assigned txid together with the raw response body.
	CreateCharge(ctx context.Context, token, pedidoID string, valor decimal.Decimal) (*models.Charge, error)
}
