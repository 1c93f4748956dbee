package organizationservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trash2cash/trash2cash/internal/domain"
)

//go:generate mockgen -source=organizationservice.go -destination=mock_organizationservice.go -package=organizationservice

var (
	ErrOrganizationExists   = errors.New("user already owns an organization")
	ErrOrganizationNotFound = errors.New("organization not found")
)

type Repo interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// RegisterInput carries the public profile of a recycling organization.
type RegisterInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Description string
	WasteTypes  string
}

// Register creates the organization profile owned by userID. A user owns at
// most one organization; a second registration fails with
// ErrOrganizationExists.
func (s *Service) Register(ctx context.Context, userID int, in RegisterInput) (*domain.Organization, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOrganizationExists
	}

	org := &domain.Organization{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Description: in.Description,
		WasteTypes:  in.WasteTypes,
	}
	created, err := s.repo.Create(ctx, org)
	if err != nil {
		zap.L().Error("can't register organization", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("organization registered",
		zap.String("orgID", created.ID.String()), zap.Int("userID", userID))
	return created, nil
}

// GetByOwner resolves the organization owned by userID, used to dispatch
// requests on the organization-scoped routes. Returns ErrOrganizationNotFound
// when the user owns none.
func (s *Service) GetByOwner(ctx context.Context, userID int) (*domain.Organization, error) {
	org, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Organization, error) {
	return s.repo.List(ctx)
}
