package inter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	nrpkg "github.com/Davidepaula1212/pix-inter-backend/internal/pkg/newrelic"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
)

// chargeExpirationSeconds is the fixed calendar expiry of every charge
const chargeExpirationSeconds = 3600

type cobCalendar struct {
	Expiracao int `json:"expiracao"`
}

type cobValue struct {
	Original string `json:"original"`
}

type cobRequest struct {
	Calendario         cobCalendar `json:"calendario"`
	Valor              cobValue    `json:"valor"`
	Chave              string      `json:"chave"`
	SolicitacaoPagador string      `json:"solicitacaoPagador"`
}

// CreateCharge registers an immediate PIX charge at the partner.
// The full response body is returned raw so callers can render payment
// instructions (copy-and-paste code, QR payload) without this service
// understanding every field.
func (c *Client) CreateCharge(ctx context.Context, token, pedidoID string, valor decimal.Decimal) (*models.Charge, error) {
	body := cobRequest{
		Calendario:         cobCalendar{Expiracao: chargeExpirationSeconds},
		Valor:              cobValue{Original: valor.StringFixed(2)},
		Chave:              c.cfg.PixKey,
		SolicitacaoPagador: fmt.Sprintf("Pedido %s", pedidoID),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charge request: %w", err)
	}

	endpoint := c.cfg.PixBaseURL + "/cob"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call charge endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read charge response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pix.UpstreamError{StatusCode: resp.StatusCode, Detail: raw}
	}

	var parsed struct {
		TxID string `json:"txid"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode charge response: %w", err)
	}
	if parsed.TxID == "" {
		return nil, fmt.Errorf("charge response missing txid")
	}

	return &models.Charge{TxID: parsed.TxID, Raw: raw}, nil
}
