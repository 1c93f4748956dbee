package payoutrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts the single payout row for a completed order. The UNIQUE
// constraint on order_id rejects a second insert, so a repeated completion can
// never produce a second disbursement.
func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
		INSERT INTO payouts (order_id, user_id, reward_kind, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payout.OrderID, payout.UserID, payout.RewardKind, payout.Amount, payout.Status, payout.CreatedAt,
	).Scan(&payout.ID)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error) {
	query := `
        SELECT id, order_id, user_id, reward_kind, amount, status, gift_card_number, created_at, sent_at
        FROM payouts
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.PayoutStatusNew, int(limit))
	if err != nil {
		zap.L().Error("can't get pending payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.OrderID, &p.UserID, &p.RewardKind, &p.Amount, &p.Status, &p.GiftCardNumber, &p.CreatedAt, &p.SentAt)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *Repository) MarkSent(ctx context.Context, payoutID int, giftCardNumber string) error {
	query := `
		UPDATE payouts
		SET status = $1, gift_card_number = $2, sent_at = now()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, domain.PayoutStatusSent, giftCardNumber, payoutID)
	if err != nil {
		zap.L().Error("failed to mark payout sent", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, payoutID int) error {
	query := `
		UPDATE payouts
		SET status = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, domain.PayoutStatusFailed, payoutID)
	if err != nil {
		zap.L().Error("failed to mark payout failed", zap.Error(err))
		return err
	}
	return nil
}
