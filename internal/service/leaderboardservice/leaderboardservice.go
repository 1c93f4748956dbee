package leaderboardservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/trash2cash/trash2cash/internal/domain"
)

//go:generate mockgen -source=leaderboardservice.go -destination=mock_leaderboardservice.go -package=leaderboardservice

type Repo interface {
	CreateEntry(ctx context.Context, userID int) (*domain.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID int) (*domain.LeaderboardEntry, error)
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	RecomputeFromOrders(ctx context.Context, userID int) (*domain.LeaderboardEntry, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateEntry(ctx context.Context, userID int) (*domain.LeaderboardEntry, error) {
	entry, err := s.repo.CreateEntry(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create leaderboard entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) Get(ctx context.Context, userID int) (*domain.LeaderboardEntry, error) {
	entry, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get leaderboard entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.Top(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard top", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Recompute rebuilds a user's totals from completed orders. The replay is the
// authoritative figure; the incrementally maintained counters are a cache this
// call repairs when they drift.
func (s *Service) Recompute(ctx context.Context, userID int) (*domain.LeaderboardEntry, error) {
	entry, err := s.repo.RecomputeFromOrders(ctx, userID)
	if err != nil {
		zap.L().Error("failed to recompute leaderboard entry", zap.Error(err), zap.Int("userID", userID))
		return nil, err
	}
	zap.L().Info("leaderboard entry recomputed", zap.Int("userID", userID),
		zap.Int("ordersCompleted", entry.TotalOrdersCompleted))
	return entry, nil
}
