package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	nrpkg "github.com/Davidepaula1212/pix-inter-backend/internal/pkg/newrelic"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// ordersEndpoint is the PostgREST path of the orders table
const ordersEndpoint = "/rest/v1/pix_orders"

// SupabaseOrderRepo talks to the hosted store through Supabase's
// PostgREST API. This is the default backend; deployments with a direct
// database connection use PostgresOrderRepo instead.
type SupabaseOrderRepo struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewSupabaseOrderRepo creates a new Supabase REST order repository
func NewSupabaseOrderRepo(cfg models.SupabaseConfig) *SupabaseOrderRepo {
	return &SupabaseOrderRepo{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *SupabaseOrderRepo) do(ctx context.Context, method, endpoint string, body []byte, extraHeaders map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", r.serviceKey)
	req.Header.Set("Authorization", "Bearer "+r.serviceKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range extraHeaders {
		req.Header.Set(key, value)
	}

	return nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return r.httpClient.Do(req)
	})
}

// GetByPedidoID returns the current order for a pedido id, or nil when
// no row exists
func (r *SupabaseOrderRepo) GetByPedidoID(ctx context.Context, pedidoID string) (*models.Order, error) {
	endpoint := fmt.Sprintf("%s%s?pedido_id=eq.%s&limit=1", r.baseURL, ordersEndpoint, url.QueryEscape(pedidoID))

	resp, err := r.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to query order: status %d", resp.StatusCode)
	}

	var orders []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	if len(orders) == 0 {
		return nil, nil
	}

	return &orders[0], nil
}

// Upsert inserts or fully replaces the row for the order's pedido id
func (r *SupabaseOrderRepo) Upsert(ctx context.Context, order *models.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s?on_conflict=pedido_id", r.baseURL, ordersEndpoint)
	headers := map[string]string{"Prefer": "resolution=merge-duplicates,return=minimal"}

	resp, err := r.do(ctx, http.MethodPost, endpoint, payload, headers)
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to upsert order: status %d", resp.StatusCode)
	}

	return nil
}

// UpdateStatusByTxID updates zero or one row matching the txid.
// PostgREST answers 2xx for zero-row patches, which keeps the no-op
// semantics for webhooks arriving before the order row exists.
func (r *SupabaseOrderRepo) UpdateStatusByTxID(ctx context.Context, txid string, status models.OrderStatus, paidAt time.Time) error {
	patch := map[string]interface{}{
		"status":     status,
		"paid_at":    paidAt.UTC().Format(time.RFC3339),
		"updated_at": paidAt.UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to marshal status update: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s?txid=eq.%s", r.baseURL, ordersEndpoint, url.QueryEscape(txid))
	headers := map[string]string{"Prefer": "return=minimal"}

	resp, err := r.do(ctx, http.MethodPatch, endpoint, payload, headers)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to update order status: status %d", resp.StatusCode)
	}

	return nil
}
