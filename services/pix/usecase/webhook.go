package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/logger"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// HandlePaymentNotification transitions the order matching the webhook
// txid to paid. A payload with no txid is ignored. A txid matching no
// order is a silent no-op at the store layer; a webhook arriving before
// the charge upsert is therefore lost and the order stays pending.
func (uc *PixUC) HandlePaymentNotification(ctx context.Context, payload *models.WebhookPayload) error {
	txid := payload.TransactionID()
	if txid == "" {
		logger.Debug("Webhook without txid ignored")
		return nil
	}

	if err := uc.repo.UpdateStatusByTxID(ctx, txid, models.OrderStatusPaid, time.Now()); err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}

	logger.Info("Order marked as paid", logger.String("txid", txid))
	return nil
}
