package orderrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = `id, user_id, waste_category, waste_subtype, weight_kg, description, image_url,
       pickup_address, pickup_date, reward_amount, reward_kind, status, organization_id, created_at, updated_at`

func scanOrder(row pgx.Row, order *domain.PickupOrder) error {
	return row.Scan(
		&order.ID, &order.UserID, &order.WasteCategory, &order.WasteSubtype, &order.WeightKg,
		&order.Description, &order.ImageURL, &order.PickupAddress, &order.PickupDate,
		&order.RewardAmount, &order.RewardKind, &order.Status, &order.OrganizationID,
		&order.CreatedAt, &order.UpdatedAt,
	)
}

func (r *Repository) Save(ctx context.Context, order *domain.PickupOrder) error {
	query := `
        INSERT INTO pickup_orders (id, user_id, waste_category, waste_subtype, weight_kg, description,
            image_url, pickup_address, pickup_date, reward_amount, reward_kind, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.ID, order.UserID, order.WasteCategory, order.WasteSubtype, order.WeightKg,
			order.Description, order.ImageURL, order.PickupAddress, order.PickupDate,
			order.RewardAmount, order.RewardKind, order.Status, order.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save pickup order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, orderID uuid.UUID) (*domain.PickupOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM pickup_orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, orderID)

	var order domain.PickupOrder
	err := scanOrder(row, &order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pickup order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.PickupOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM pickup_orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get pickup orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) FindByStatus(ctx context.Context, status string, limit uint32) ([]domain.PickupOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM pickup_orders
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, status, int(limit))
	if err != nil {
		zap.L().Error("can't get pickup orders by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]domain.PickupOrder, error) {
	var orders []domain.PickupOrder
	for rows.Next() {
		var order domain.PickupOrder
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan pickup order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// TransitionConfirm moves a pending order to confirmed and binds the
// organization. The status precondition in the WHERE clause is the only
// concurrency control: of two racing confirmations exactly one updates a row.
func (r *Repository) TransitionConfirm(ctx context.Context, orderID, organizationID uuid.UUID) (bool, error) {
	query := `
        UPDATE pickup_orders
        SET status = $1, organization_id = $2, updated_at = now()
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.OrderStatusConfirmed, organizationID, orderID, domain.OrderStatusPending)
	if err != nil {
		zap.L().Error("failed to confirm pickup order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// TransitionAccept moves a confirmed order to in_progress. Only the
// organization that confirmed it may accept.
func (r *Repository) TransitionAccept(ctx context.Context, orderID, organizationID uuid.UUID) (bool, error) {
	query := `
        UPDATE pickup_orders
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3 AND organization_id = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.OrderStatusInProgress, orderID, domain.OrderStatusConfirmed, organizationID)
	if err != nil {
		zap.L().Error("failed to accept pickup order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// TransitionComplete moves an in_progress order to completed for the
// fulfilling organization. Callers run it inside the completion transaction so
// the status flip, the payout insert and the leaderboard update land together.
func (r *Repository) TransitionComplete(ctx context.Context, orderID, organizationID uuid.UUID) (bool, error) {
	query := `
        UPDATE pickup_orders
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3 AND organization_id = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.OrderStatusCompleted, orderID, domain.OrderStatusInProgress, organizationID)
	if err != nil {
		zap.L().Error("failed to complete pickup order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
