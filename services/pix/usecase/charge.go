package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/logger"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/Davidepaula1212/pix-inter-backend/internal/utils"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
)

// CreateCharge creates a PIX charge for the given raw pedido id.
//
// An order already marked paid short-circuits without contacting the
// partner: this is the idempotency guard against double-charging a
// settled requester. A still-pending order is silently re-charged and
// its row replaced.
//
// The lookup and the upsert are not transactional: two concurrent
// requests for the same pedido id can both pass the paid check and
// both charge the partner, with the later upsert winning. Accepted
// behavior, see DESIGN.md.
func (uc *PixUC) CreateCharge(ctx context.Context, rawPedidoID string, valor decimal.Decimal) (*models.ChargeResult, error) {
	pedidoID := utils.NormalizeEmail(rawPedidoID)
	if pedidoID == "" || !strings.Contains(pedidoID, "@") {
		return nil, pix.ErrInvalidPedidoID
	}

	existing, err := uc.repo.GetByPedidoID(ctx, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	if existing != nil && existing.Status == models.OrderStatusPaid {
		logger.Info("Charge request for already paid order",
			logger.String("pedido_id", utils.MaskEmail(pedidoID)),
			logger.String("txid", existing.TxID))
		return &models.ChargeResult{Status: models.OrderStatusPaid}, nil
	}

	token, err := uc.gw.GetAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire access token: %w", err)
	}

	charge, err := uc.gw.CreateCharge(ctx, token, pedidoID, valor)
	if err != nil {
		return nil, fmt.Errorf("failed to create charge: %w", err)
	}

	now := time.Now()
	order := &models.Order{
		PedidoID:  pedidoID,
		TxID:      charge.TxID,
		Valor:     valor,
		Status:    models.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Upsert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	logger.Info("PIX charge created",
		logger.String("pedido_id", utils.MaskEmail(pedidoID)),
		logger.String("txid", charge.TxID))

	return &models.ChargeResult{
		Status:  models.OrderStatusPending,
		TxID:    charge.TxID,
		PixData: charge.Raw,
	}, nil
}
