package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trash2cash/trash2cash/internal/config"
	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/pkg/clients"
	"github.com/trash2cash/trash2cash/pkg/validate"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingPayouts sync.Map

type PayoutRepo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error)
	MarkSent(ctx context.Context, payoutID int, giftCardNumber string) error
	MarkFailed(ctx context.Context, payoutID int) error
}

// Request is the disbursement order submitted to the payout provider.
type Request struct {
	Order  string  `json:"order"`
	User   int     `json:"user"`
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

// Response is the provider's verdict. GiftCardNumber is set only for
// gift_card disbursements with status PROCESSED.
type Response struct {
	Order          string `json:"order"`
	Status         string `json:"status"`
	GiftCardNumber string `json:"gift_card_number,omitempty"`
}

// Service pushes unsettled payouts to the external provider. Each completed
// order owes exactly one payout row; the poller retries delivery until the
// provider processes or rejects it.
type Service struct {
	url            string
	payoutRepo     PayoutRepo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, payoutRepo PayoutRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.PayoutAddress,
		payoutRepo:     payoutRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processPayouts(ctx)
		}
	}
}

func (s *Service) processPayouts(ctx context.Context) {
	payouts, err := s.payoutRepo.FindPending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch payouts for settlement", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payout := range payouts {
		payout := payout

		if _, loaded := processingPayouts.LoadOrStore(payout.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPayouts.Delete(payout.ID)
				return s.handlePayout(ctx, payout)
			})
			if err != nil {
				processingPayouts.Delete(payout.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error settling payouts", zap.Error(err))
	}
}

func (s *Service) handlePayout(ctx context.Context, payout domain.Payout) error {
	url := s.url + "/api/payouts"
	body, err := json.Marshal(Request{
		Order:  payout.OrderID.String(),
		User:   payout.UserID,
		Kind:   payout.RewardKind,
		Amount: payout.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to encode payout %d: %w", payout.ID, err)
	}

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, nil, body)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to settle payout %d after %d retries: %w", payout.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(payout, respHeaders, attempt)
			case http.StatusOK:
				return s.processVerdict(ctx, payout, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("payoutID", payout.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processVerdict(ctx context.Context, payout domain.Payout, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Order != payout.OrderID.String() {
		return fmt.Errorf("order mismatch: expected %s, got %s", payout.OrderID, response.Order)
	}

	switch response.Status {
	case "PROCESSED":
		if payout.RewardKind == domain.RewardKindGiftCard {
			if !validate.IsGiftCardNumber(response.GiftCardNumber) {
				return fmt.Errorf("invalid gift card number for payout %d", payout.ID)
			}
		}
		if err := s.payoutRepo.MarkSent(ctx, payout.ID, response.GiftCardNumber); err != nil {
			return fmt.Errorf("failed to mark payout %d sent: %w", payout.ID, err)
		}
		zap.L().Info("Payout settled", zap.Int("payoutID", payout.ID), zap.Float64("amount", payout.Amount))
	case "REGISTERED":
		zap.L().Info("Payout registered, not processed yet", zap.Int("payoutID", payout.ID))
	case "REJECTED":
		if err := s.payoutRepo.MarkFailed(ctx, payout.ID); err != nil {
			return fmt.Errorf("failed to mark payout %d failed: %w", payout.ID, err)
		}
		zap.L().Warn("Payout rejected by provider", zap.Int("payoutID", payout.ID))
	default:
		zap.L().Warn("Unrecognized status received", zap.Int("payoutID", payout.ID), zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(payout domain.Payout, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("payoutID", payout.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
