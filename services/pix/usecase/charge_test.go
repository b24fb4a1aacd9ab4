package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix/mocks"
)

func setupUseCaseTest(t *testing.T) (*PixUC, *mocks.MockOrderRepo, *mocks.MockInterGateway) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockInterGateway(ctrl)
	uc := NewPixUC(&models.Config{}, mockRepo, mockGW)
	return uc, mockRepo, mockGW
}

func TestCreateCharge_InvalidPedidoID(t *testing.T) {
	tests := []struct {
		name     string
		pedidoID string
	}{
		{name: "empty", pedidoID: ""},
		{name: "whitespace only", pedidoID: "   "},
		{name: "no at sign", pedidoID: "pedido-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repo or gateway expectations: rejection must happen
			// before any dependency is touched.
			uc, _, _ := setupUseCaseTest(t)

			result, err := uc.CreateCharge(context.Background(), tt.pedidoID, decimal.NewFromInt(10))

			assert.ErrorIs(t, err, pix.ErrInvalidPedidoID)
			assert.Nil(t, result)
		})
	}
}

func TestCreateCharge_AlreadyPaid(t *testing.T) {
	uc, mockRepo, _ := setupUseCaseTest(t)

	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "cliente@example.com").
		Return(&models.Order{
			PedidoID: "cliente@example.com",
			TxID:     "TX1",
			Status:   models.OrderStatusPaid,
		}, nil)

	result, err := uc.CreateCharge(context.Background(), "cliente@example.com", decimal.NewFromInt(25))

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, result.Status)
	assert.Empty(t, result.TxID)
	assert.Nil(t, result.PixData)
}

func TestCreateCharge_HappyPath(t *testing.T) {
	uc, mockRepo, mockGW := setupUseCaseTest(t)

	rawCharge := json.RawMessage(`{"txid":"TX1","pixCopiaECola":"00020101br.gov.bcb.pix"}`)
	valor := decimal.RequireFromString("10.50")

	// The raw id is trimmed and lowercased before any lookup.
	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "user@example.com").
		Return(nil, nil)
	mockGW.EXPECT().
		GetAccessToken(gomock.Any()).
		Return("tok-abc", nil)
	mockGW.EXPECT().
		CreateCharge(gomock.Any(), "tok-abc", "user@example.com", valor).
		Return(&models.Charge{TxID: "TX1", Raw: rawCharge}, nil)
	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *models.Order) error {
			assert.Equal(t, "user@example.com", order.PedidoID)
			assert.Equal(t, "TX1", order.TxID)
			assert.True(t, valor.Equal(order.Valor))
			assert.Equal(t, models.OrderStatusPending, order.Status)
			assert.Nil(t, order.PaidAt)
			return nil
		})

	result, err := uc.CreateCharge(context.Background(), "  User@Example.com  ", valor)

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, result.Status)
	assert.Equal(t, "TX1", result.TxID)
	assert.Equal(t, rawCharge, result.PixData)
}

func TestCreateCharge_PendingOrderIsRecharged(t *testing.T) {
	uc, mockRepo, mockGW := setupUseCaseTest(t)

	valor := decimal.NewFromInt(5)

	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "cliente@example.com").
		Return(&models.Order{
			PedidoID: "cliente@example.com",
			TxID:     "TX-OLD",
			Status:   models.OrderStatusPending,
		}, nil)
	mockGW.EXPECT().GetAccessToken(gomock.Any()).Return("tok", nil)
	mockGW.EXPECT().
		CreateCharge(gomock.Any(), "tok", "cliente@example.com", valor).
		Return(&models.Charge{TxID: "TX-NEW", Raw: json.RawMessage(`{"txid":"TX-NEW"}`)}, nil)
	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *models.Order) error {
			assert.Equal(t, "TX-NEW", order.TxID)
			return nil
		})

	result, err := uc.CreateCharge(context.Background(), "cliente@example.com", valor)

	require.NoError(t, err)
	assert.Equal(t, "TX-NEW", result.TxID)
}

func TestCreateCharge_LookupError(t *testing.T) {
	uc, mockRepo, _ := setupUseCaseTest(t)

	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "cliente@example.com").
		Return(nil, errors.New("store unavailable"))

	result, err := uc.CreateCharge(context.Background(), "cliente@example.com", decimal.NewFromInt(10))

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to look up order")
}

func TestCreateCharge_TokenError(t *testing.T) {
	uc, mockRepo, mockGW := setupUseCaseTest(t)

	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "cliente@example.com").
		Return(nil, nil)
	mockGW.EXPECT().
		GetAccessToken(gomock.Any()).
		Return("", errors.New("401 from oauth"))

	result, err := uc.CreateCharge(context.Background(), "cliente@example.com", decimal.NewFromInt(10))

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to acquire access token")
}

func TestCreateCharge_GatewayError(t *testing.T) {
	uc, mockRepo, mockGW := setupUseCaseTest(t)

	upstream := &pix.UpstreamError{StatusCode: 400, Detail: json.RawMessage(`{"title":"cobranca invalida"}`)}

	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "cliente@example.com").
		Return(nil, nil)
	mockGW.EXPECT().GetAccessToken(gomock.Any()).Return("tok", nil)
	mockGW.EXPECT().
		CreateCharge(gomock.Any(), "tok", "cliente@example.com", gomock.Any()).
		Return(nil, upstream)

	result, err := uc.CreateCharge(context.Background(), "cliente@example.com", decimal.NewFromInt(10))

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to create charge")

	var ue *pix.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 400, ue.StatusCode)
}

func TestCreateCharge_UpsertError(t *testing.T) {
	uc, mockRepo, mockGW := setupUseCaseTest(t)

	mockRepo.EXPECT().
		GetByPedidoID(gomock.Any(), "cliente@example.com").
		Return(nil, nil)
	mockGW.EXPECT().GetAccessToken(gomock.Any()).Return("tok", nil)
	mockGW.EXPECT().
		CreateCharge(gomock.Any(), "tok", "cliente@example.com", gomock.Any()).
		Return(&models.Charge{TxID: "TX1", Raw: json.RawMessage(`{}`)}, nil)
	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(errors.New("write failed"))

	result, err := uc.CreateCharge(context.Background(), "cliente@example.com", decimal.NewFromInt(10))

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to persist order")
}
