package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/logger"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
)

type createChargeRequest struct {
	PedidoID string          `json:"pedidoId"`
	Valor    decimal.Decimal `json:"valor"`
}

type chargeResponse struct {
	Status models.OrderStatus `json:"status"`
	TxID   string             `json:"txid,omitempty"`
	// DadosPix carries the partner's raw charge body through unchanged.
	DadosPix json.RawMessage `json:"dadosPix,omitempty"`
}

type errorResponse struct {
	Error   string          `json:"error"`
	Detalhe json.RawMessage `json:"detalhe,omitempty"`
}

// CreateCharge handles POST /pix/criar
func (h *PixHandler) CreateCharge(c echo.Context) error {
	var req createChargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email inválido"})
	}

	result, err := h.pixUC.CreateCharge(c.Request().Context(), req.PedidoID, req.Valor)
	if err != nil {
		if errors.Is(err, pix.ErrInvalidPedidoID) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email inválido"})
		}

		logger.Error("Failed to create PIX charge", logger.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Erro ao criar PIX",
			Detalhe: errorDetail(err),
		})
	}

	if result.Status == models.OrderStatusPaid {
		return c.JSON(http.StatusOK, chargeResponse{Status: models.OrderStatusPaid})
	}

	return c.JSON(http.StatusOK, chargeResponse{
		Status:   models.OrderStatusPending,
		TxID:     result.TxID,
		DadosPix: result.PixData,
	})
}

// HandleWebhook handles POST /pix/webhook. The partner retries on
// non-2xx, so every outcome answers 200; failures are only logged.
func (h *PixHandler) HandleWebhook(c echo.Context) error {
	var payload models.WebhookPayload
	if err := c.Bind(&payload); err != nil {
		logger.Warn("Unreadable webhook payload ignored", logger.Err(err))
		return c.NoContent(http.StatusOK)
	}

	if err := h.pixUC.HandlePaymentNotification(c.Request().Context(), &payload); err != nil {
		logger.Error("Failed to process payment notification", logger.Err(err))
	}

	return c.NoContent(http.StatusOK)
}

// GetStatus handles GET /pix/status. Store failures are reported as
// not_found, matching the create/lookup contract callers poll against.
func (h *PixHandler) GetStatus(c echo.Context) error {
	order, err := h.pixUC.GetOrderStatus(c.Request().Context(), c.QueryParam("pedidoId"))
	if err != nil {
		logger.Error("Failed to look up order status", logger.Err(err))
		return c.JSON(http.StatusOK, map[string]string{"status": "not_found"})
	}

	if order == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "not_found"})
	}

	return c.JSON(http.StatusOK, order)
}

// errorDetail extracts the partner's raw error body when the failure
// came from upstream, otherwise the error message as a JSON string.
func errorDetail(err error) json.RawMessage {
	var ue *pix.UpstreamError
	if errors.As(err, &ue) && len(ue.Detail) > 0 {
		return ue.Detail
	}

	detail, marshalErr := json.Marshal(err.Error())
	if marshalErr != nil {
		return nil
	}
	return detail
}
