package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/pg"
	"github.com/trash2cash/trash2cash/internal/pricing"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	Save(ctx context.Context, order *domain.PickupOrder) error
	FindByID(ctx context.Context, orderID uuid.UUID) (*domain.PickupOrder, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.PickupOrder, error)
	FindByStatus(ctx context.Context, status string, limit uint32) ([]domain.PickupOrder, error)
	TransitionConfirm(ctx context.Context, orderID, organizationID uuid.UUID) (bool, error)
	TransitionAccept(ctx context.Context, orderID, organizationID uuid.UUID) (bool, error)
	TransitionComplete(ctx context.Context, orderID, organizationID uuid.UUID) (bool, error)
}

type OrganizationRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
}

type LeaderboardRepo interface {
	IncrementTotals(ctx context.Context, userID int, cash float64, ecoPoints int) error
}

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
}

// UserActions is the capability surface exposed to the submitting consumer.
type UserActions interface {
	Create(ctx context.Context, userID int, input CreateOrderInput) (*domain.PickupOrder, error)
	GetOrders(ctx context.Context, userID int) ([]domain.PickupOrder, error)
}

// OrganizationActions is the capability surface exposed to collection
// partners. The same PickupOrder entity, disjoint operations.
type OrganizationActions interface {
	GetPending(ctx context.Context, limit uint32) ([]domain.PickupOrder, error)
	Confirm(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error)
	Accept(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error)
	Complete(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error)
}

type Service struct {
	repo            Repo
	orgRepo         OrganizationRepo
	leaderboardRepo LeaderboardRepo
	payoutRepo      PayoutRepo
	txManager       pg.TXManager
}

func New(repo Repo, orgRepo OrganizationRepo, leaderboardRepo LeaderboardRepo, payoutRepo PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:            repo,
		orgRepo:         orgRepo,
		leaderboardRepo: leaderboardRepo,
		payoutRepo:      payoutRepo,
		txManager:       txManager,
	}
}

var (
	ErrWeightBelowMinimum   = errors.New("waste weight must be at least 10 kg")
	ErrUnknownWasteType     = errors.New("unknown waste category or subtype")
	ErrUnknownRewardKind    = errors.New("unknown reward kind")
	ErrOrderNotFound        = errors.New("pickup order not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

type CreateOrderInput struct {
	Category      string
	Subtype       string
	WeightKg      float64
	Description   string
	ImageURL      string
	PickupAddress string
	PickupDate    *time.Time
	Reward        domain.DraftReward
}

// Create validates the submission, prices it and persists a pending order.
// Orders below the weight threshold are rejected before anything is written.
func (s *Service) Create(ctx context.Context, userID int, input CreateOrderInput) (*domain.PickupOrder, error) {
	if input.WeightKg < pricing.MinWeightKg {
		zap.L().Info("order rejected, weight below threshold",
			zap.Int("userID", userID), zap.Float64("weightKg", input.WeightKg))
		return nil, ErrWeightBelowMinimum
	}

	switch input.Reward.Kind {
	case domain.RewardKindCash, domain.RewardKindEcoPoints, domain.RewardKindGiftCard:
	default:
		return nil, ErrUnknownRewardKind
	}

	quote, err := pricing.Estimate(pricing.Category(input.Category), pricing.Subtype(input.Subtype), input.WeightKg)
	switch {
	case errors.Is(err, pricing.ErrUnknownCategory), errors.Is(err, pricing.ErrUnknownSubtype):
		return nil, ErrUnknownWasteType
	case err != nil:
		zap.L().Error("pricing failed", zap.Error(err),
			zap.String("category", input.Category), zap.String("subtype", input.Subtype))
		return nil, err
	}

	order := &domain.PickupOrder{
		ID:            uuid.New(),
		UserID:        userID,
		WasteCategory: input.Category,
		WasteSubtype:  input.Subtype,
		WeightKg:      input.WeightKg,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		PickupAddress: input.PickupAddress,
		PickupDate:    input.PickupDate,
		RewardAmount:  quote.RewardAmount(input.Reward.Kind == domain.RewardKindEcoPoints),
		RewardKind:    input.Reward.Kind,
		Status:        domain.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save pickup order", zap.Error(err))
		return nil, err
	}

	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.PickupOrder, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get pickup orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetPending(ctx context.Context, limit uint32) ([]domain.PickupOrder, error) {
	orders, err := s.repo.FindByStatus(ctx, domain.OrderStatusPending, limit)
	if err != nil {
		zap.L().Error("failed to get pending pickup orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Confirm moves a pending order to confirmed and binds the organization.
// First confirmation wins; a losing racer gets ErrInvalidTransition.
func (s *Service) Confirm(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error) {
	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	ok, err := s.repo.TransitionConfirm(ctx, orderID, organizationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.transitionFailure(ctx, orderID)
	}

	zap.L().Info("pickup order confirmed",
		zap.String("orderID", orderID.String()), zap.String("organizationID", organizationID.String()))
	return s.repo.FindByID(ctx, orderID)
}

// Accept moves a confirmed order to in_progress. Only the organization bound
// at confirmation passes the guard.
func (s *Service) Accept(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error) {
	ok, err := s.repo.TransitionAccept(ctx, orderID, organizationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.transitionFailure(ctx, orderID)
	}

	zap.L().Info("pickup order accepted",
		zap.String("orderID", orderID.String()), zap.String("organizationID", organizationID.String()))
	return s.repo.FindByID(ctx, orderID)
}

// Complete finishes an in_progress order. The status flip, the payout row and
// the leaderboard increment commit in one transaction; because the machine can
// reach completed only once and the payout is unique per order, the aggregate
// is applied exactly once however many times completion is attempted.
func (s *Service) Complete(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error) {
	var completed *domain.PickupOrder

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		ok, err := s.repo.TransitionComplete(ctx, orderID, organizationID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}

		payout := &domain.Payout{
			OrderID:    order.ID,
			UserID:     order.UserID,
			RewardKind: order.RewardKind,
			Amount:     order.RewardAmount,
			Status:     domain.PayoutStatusNew,
			CreatedAt:  time.Now(),
		}
		if _, err := s.payoutRepo.Create(ctx, payout); err != nil {
			return err
		}

		cash, ecoPoints := splitReward(order.RewardKind, order.RewardAmount)
		if err := s.leaderboardRepo.IncrementTotals(ctx, order.UserID, cash, ecoPoints); err != nil {
			return err
		}

		order.Status = domain.OrderStatusCompleted
		completed = order
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		zap.L().Error("failed to complete pickup order", zap.Error(err), zap.String("orderID", orderID.String()))
		return nil, err
	}

	zap.L().Info("pickup order completed",
		zap.String("orderID", orderID.String()), zap.Float64("rewardAmount", completed.RewardAmount))
	return completed, nil
}

func splitReward(kind string, amount float64) (cash float64, ecoPoints int) {
	if kind == domain.RewardKindEcoPoints {
		return 0, int(amount)
	}
	return amount, 0
}

// transitionFailure tells a missing order apart from a guard violation after a
// conditional update touched no rows.
func (s *Service) transitionFailure(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	zap.L().Info("order transition rejected",
		zap.String("orderID", orderID.String()), zap.String("status", order.Status))
	return ErrInvalidTransition
}
