package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

func TestHandlePaymentNotification_NestedTxID(t *testing.T) {
	uc, mockRepo, _ := setupUseCaseTest(t)

	mockRepo.EXPECT().
		UpdateStatusByTxID(gomock.Any(), "TX1", models.OrderStatusPaid, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.OrderStatus, paidAt time.Time) error {
			assert.WithinDuration(t, time.Now(), paidAt, 2*time.Second)
			return nil
		})

	payload := &models.WebhookPayload{Pix: []models.WebhookPix{{TxID: "TX1"}}}
	assert.NoError(t, uc.HandlePaymentNotification(context.Background(), payload))
}

func TestHandlePaymentNotification_FlatTxID(t *testing.T) {
	uc, mockRepo, _ := setupUseCaseTest(t)

	mockRepo.EXPECT().
		UpdateStatusByTxID(gomock.Any(), "TX2", models.OrderStatusPaid, gomock.Any()).
		Return(nil)

	payload := &models.WebhookPayload{TxID: "TX2"}
	assert.NoError(t, uc.HandlePaymentNotification(context.Background(), payload))
}

func TestHandlePaymentNotification_NoTxID(t *testing.T) {
	// No repo expectation: a payload without txid never reaches the store.
	uc, _, _ := setupUseCaseTest(t)

	payload := &models.WebhookPayload{}
	assert.NoError(t, uc.HandlePaymentNotification(context.Background(), payload))
}

func TestHandlePaymentNotification_StoreError(t *testing.T) {
	uc, mockRepo, _ := setupUseCaseTest(t)

	mockRepo.EXPECT().
		UpdateStatusByTxID(gomock.Any(), "TX3", models.OrderStatusPaid, gomock.Any()).
		Return(errors.New("store unavailable"))

	payload := &models.WebhookPayload{TxID: "TX3"}
	err := uc.HandlePaymentNotification(context.Background(), payload)
	assert.ErrorContains(t, err, "failed to mark order paid")
}
