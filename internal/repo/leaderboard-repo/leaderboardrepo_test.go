package leaderboardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var entryColumns = []string{"id", "user_id", "total_cash_earned", "total_eco_points", "total_orders_completed"}

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.LeaderboardEntry
	}{
		{
			name:   "Entry created",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumns).AddRow(1, 1, 0.0, 0, 0)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leaderboard")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.LeaderboardEntry{ID: 1, UserID: 1},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leaderboard")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateEntry(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.LeaderboardEntry
	}{
		{
			name:   "Entry exists",
			userID: 42,
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumns).AddRow(7, 42, 7275.0, 400, 3)
				mock.ExpectQuery(regexp.QuoteMeta("FROM leaderboard")).
					WithArgs(42).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.LeaderboardEntry{
				ID:                   7,
				UserID:               42,
				TotalCashEarned:      7275.0,
				TotalEcoPoints:       400,
				TotalOrdersCompleted: 3,
			},
		},
		{
			name:   "Entry does not exist",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM leaderboard")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM leaderboard")).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Top(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		limit     int
		mockSetup func()
		expectErr bool
		result    []domain.LeaderboardEntry
	}{
		{
			name:  "Entries ranked by eco points",
			limit: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumns).
					AddRow(1, 10, 500.0, 900, 5).
					AddRow(2, 20, 8000.0, 120, 2)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_eco_points DESC")).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.LeaderboardEntry{
				{ID: 1, UserID: 10, TotalCashEarned: 500.0, TotalEcoPoints: 900, TotalOrdersCompleted: 5},
				{ID: 2, UserID: 20, TotalCashEarned: 8000.0, TotalEcoPoints: 120, TotalOrdersCompleted: 2},
			},
		},
		{
			name:  "Database error",
			limit: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_eco_points DESC")).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:  "Scan row error",
			limit: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumns).
					AddRow(1, 10, "invalid_value", 900, 5)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_eco_points DESC")).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Top(context.Background(), tt.limit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_IncrementTotals(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Totals incremented",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).
					WithArgs(1, 7275.0, 0).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).
					WithArgs(1, 7275.0, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.IncrementTotals(context.Background(), 1, 7275.0, 0)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_RecomputeFromOrders(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.LeaderboardEntry
	}{
		{
			name: "Totals rebuilt from completed orders",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows(entryColumns).AddRow(7, 42, 7275.0, 400, 3)
					mock.ExpectQuery(regexp.QuoteMeta("FROM pickup_orders")).
						WithArgs(42, domain.RewardKindCash, domain.RewardKindGiftCard, domain.RewardKindEcoPoints, domain.OrderStatusCompleted).
						WillReturnRows(rows)
					return fn(ctx)
				})
			},
			expectErr: false,
			result: &domain.LeaderboardEntry{
				ID:                   7,
				UserID:               42,
				TotalCashEarned:      7275.0,
				TotalEcoPoints:       400,
				TotalOrdersCompleted: 3,
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("FROM pickup_orders")).
						WithArgs(42, domain.RewardKindCash, domain.RewardKindGiftCard, domain.RewardKindEcoPoints, domain.OrderStatusCompleted).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.RecomputeFromOrders(context.Background(), 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
