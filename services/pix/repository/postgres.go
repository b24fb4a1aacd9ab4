package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// PostgresOrderRepo persists orders over a direct database connection.
// Selected at startup when DATABASE_URL is configured.
type PostgresOrderRepo struct {
	db *sqlx.DB
}

// NewPostgresOrderRepo creates a new Postgres order repository
func NewPostgresOrderRepo(db *sqlx.DB) *PostgresOrderRepo {
	return &PostgresOrderRepo{db: db}
}

// GetByPedidoID returns the current order for a pedido id, or nil when
// no row exists
func (r *PostgresOrderRepo) GetByPedidoID(ctx context.Context, pedidoID string) (*models.Order, error) {
	query := `
		SELECT pedido_id, txid, valor, status, paid_at, created_at, updated_at
		FROM pix_orders
		WHERE pedido_id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, pedidoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// Upsert inserts or fully replaces the row for the order's pedido id
func (r *PostgresOrderRepo) Upsert(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO pix_orders (pedido_id, txid, valor, status, paid_at, created_at, updated_at)
		VALUES (:pedido_id, :txid, :valor, :status, :paid_at, :created_at, :updated_at)
		ON CONFLICT (pedido_id) DO UPDATE SET
			txid = EXCLUDED.txid,
			valor = EXCLUDED.valor,
			status = EXCLUDED.status,
			paid_at = EXCLUDED.paid_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.NamedExecContext(ctx, query, order)
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}

	return nil
}

// UpdateStatusByTxID updates zero or one row matching the txid.
// Zero affected rows is not an error: a webhook may race the upsert of
// a freshly created charge.
func (r *PostgresOrderRepo) UpdateStatusByTxID(ctx context.Context, txid string, status models.OrderStatus, paidAt time.Time) error {
	query := `
		UPDATE pix_orders
		SET status = $1, paid_at = $2, updated_at = $2
		WHERE txid = $3
	`

	_, err := r.db.ExecContext(ctx, query, status, paidAt, txid)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}
