package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

func newSupabaseRepo(srv *httptest.Server) *SupabaseOrderRepo {
	repo := NewSupabaseOrderRepo(models.SupabaseConfig{
		URL:            srv.URL,
		ServiceRoleKey: "service-role-key",
	})
	repo.httpClient = srv.Client()
	return repo
}

func TestSupabaseGetByPedidoID_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/pix_orders", r.URL.Path)
		assert.Equal(t, "eq.user@example.com", r.URL.Query().Get("pedido_id"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "service-role-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-role-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"pedido_id":"user@example.com","txid":"TX1","valor":10.5,"status":"pending","paid_at":null}]`))
	}))
	defer srv.Close()

	repo := newSupabaseRepo(srv)

	order, err := repo.GetByPedidoID(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "user@example.com", order.PedidoID)
	assert.Equal(t, "TX1", order.TxID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.Valor.Equal(decimal.NewFromFloat(10.5)))
	assert.Nil(t, order.PaidAt)
}

func TestSupabaseGetByPedidoID_Absent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repo := newSupabaseRepo(srv)

	order, err := repo.GetByPedidoID(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestSupabaseGetByPedidoID_StoreFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := newSupabaseRepo(srv)

	_, err := repo.GetByPedidoID(context.Background(), "user@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query order")
}

func TestSupabaseUpsert(t *testing.T) {
	now := time.Now()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/pix_orders", r.URL.Path)
		assert.Equal(t, "pedido_id", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, "resolution=merge-duplicates,return=minimal", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var row map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &row))
		assert.Equal(t, "user@example.com", row["pedido_id"])
		assert.Equal(t, "TX1", row["txid"])
		assert.Equal(t, "pending", row["status"])
		assert.Nil(t, row["paid_at"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := newSupabaseRepo(srv)

	err := repo.Upsert(context.Background(), &models.Order{
		PedidoID:  "user@example.com",
		TxID:      "TX1",
		Valor:     decimal.NewFromFloat(10.5),
		Status:    models.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.NoError(t, err)
}

func TestSupabaseUpdateStatusByTxID(t *testing.T) {
	paidAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/pix_orders", r.URL.Path)
		assert.Equal(t, "eq.TX1", r.URL.Query().Get("txid"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var patch map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &patch))
		assert.Equal(t, "paid", patch["status"])
		assert.Equal(t, "2024-06-01T12:00:00Z", patch["paid_at"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	repo := newSupabaseRepo(srv)

	err := repo.UpdateStatusByTxID(context.Background(), "TX1", models.OrderStatusPaid, paidAt)
	assert.NoError(t, err)
}

func TestSupabaseUpdateStatusByTxID_StoreFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := newSupabaseRepo(srv)

	err := repo.UpdateStatusByTxID(context.Background(), "TX1", models.OrderStatusPaid, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update order status")
}
