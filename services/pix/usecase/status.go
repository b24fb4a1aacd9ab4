package usecase

import (
	"context"
	"fmt"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/Davidepaula1212/pix-inter-backend/internal/utils"
)

// GetOrderStatus returns the stored order for the given raw pedido id,
// or nil when no order exists. Read-only, no side effects.
func (uc *PixUC) GetOrderStatus(ctx context.Context, rawPedidoID string) (*models.Order, error) {
	pedidoID := utils.NormalizeEmail(rawPedidoID)

	order, err := uc.repo.GetByPedidoID(ctx, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	return order, nil
}
