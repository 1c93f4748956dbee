package leaderboardrepo

import (
	"context"

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

func (r *Repository) CreateEntry(ctx context.Context, userID int) (*domain.LeaderboardEntry, error) {
	query := `
        INSERT INTO leaderboard (user_id, total_cash_earned, total_eco_points, total_orders_completed)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, total_cash_earned, total_eco_points, total_orders_completed
    `
	row := r.db.QueryRow(ctx, query, userID)
	var entry domain.LeaderboardEntry
	err := row.Scan(&entry.ID, &entry.UserID, &entry.TotalCashEarned, &entry.TotalEcoPoints, &entry.TotalOrdersCompleted)
	if err != nil {
		zap.L().Error("failed to create leaderboard entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.LeaderboardEntry, error) {
	query := `
        SELECT id, user_id, total_cash_earned, total_eco_points, total_orders_completed
        FROM leaderboard
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var entry domain.LeaderboardEntry
	err := row.Scan(&entry.ID, &entry.UserID, &entry.TotalCashEarned, &entry.TotalEcoPoints, &entry.TotalOrdersCompleted)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get leaderboard entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
        SELECT id, user_id, total_cash_earned, total_eco_points, total_orders_completed
        FROM leaderboard
        ORDER BY total_eco_points DESC, total_cash_earned DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard top", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.TotalCashEarned, &entry.TotalEcoPoints, &entry.TotalOrdersCompleted)
		if err != nil {
			zap.L().Error("failed to scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// IncrementTotals applies one completed order to the aggregate. The upsert
// keeps it safe for users registered before the leaderboard table existed.
func (r *Repository) IncrementTotals(ctx context.Context, userID int, cash float64, ecoPoints int) error {
	query := `
        INSERT INTO leaderboard (user_id, total_cash_earned, total_eco_points, total_orders_completed)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (user_id) DO UPDATE
        SET total_cash_earned = leaderboard.total_cash_earned + EXCLUDED.total_cash_earned,
            total_eco_points = leaderboard.total_eco_points + EXCLUDED.total_eco_points,
            total_orders_completed = leaderboard.total_orders_completed + 1
    `
	_, err := r.db.Exec(ctx, query, userID, cash, ecoPoints)
	if err != nil {
		zap.L().Error("failed to increment leaderboard totals", zap.Error(err))
		return err
	}
	return nil
}

// RecomputeFromOrders rebuilds the user's aggregate by replaying completed
// orders. The orders table is the source of truth; the stored counters are an
// optimization that this call repairs.
func (r *Repository) RecomputeFromOrders(ctx context.Context, userID int) (*domain.LeaderboardEntry, error) {
	query := `
        INSERT INTO leaderboard (user_id, total_cash_earned, total_eco_points, total_orders_completed)
        SELECT $1,
               COALESCE(SUM(reward_amount) FILTER (WHERE reward_kind IN ($2, $3)), 0),
               COALESCE(SUM(reward_amount) FILTER (WHERE reward_kind = $4), 0)::int,
               COUNT(*)
        FROM pickup_orders
        WHERE user_id = $1 AND status = $5
        ON CONFLICT (user_id) DO UPDATE
        SET total_cash_earned = EXCLUDED.total_cash_earned,
            total_eco_points = EXCLUDED.total_eco_points,
            total_orders_completed = EXCLUDED.total_orders_completed
        RETURNING id, user_id, total_cash_earned, total_eco_points, total_orders_completed
    `
	var entry domain.LeaderboardEntry
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			userID, domain.RewardKindCash, domain.RewardKindGiftCard, domain.RewardKindEcoPoints,
			domain.OrderStatusCompleted,
		)
		err := row.Scan(&entry.ID, &entry.UserID, &entry.TotalCashEarned, &entry.TotalEcoPoints, &entry.TotalOrdersCompleted)
		if err != nil {
			zap.L().Error("failed to recompute leaderboard entry", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
