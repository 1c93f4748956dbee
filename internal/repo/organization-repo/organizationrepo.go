package organizationrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const organizationColumns = `id, user_id, name, email, phone, address, description, waste_types, created_at`

func (r *Repository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	query := `
        INSERT INTO organizations (id, user_id, name, email, phone, address, description, waste_types)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		org.ID, org.UserID, org.Name, org.Email, org.Phone, org.Address, org.Description, org.WasteTypes,
	).Scan(&org.CreatedAt)
	if err != nil {
		zap.L().Error("can't save organization", zap.Error(err))
		return nil, err
	}
	return org, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	query := `
        SELECT ` + organizationColumns + `
        FROM organizations
        WHERE id = $1
    `
	var org domain.Organization
	err := r.db.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.UserID, &org.Name, &org.Email, &org.Phone,
		&org.Address, &org.Description, &org.WasteTypes, &org.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find organization", zap.Error(err))
		return nil, err
	}
	return &org, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Organization, error) {
	query := `
        SELECT ` + organizationColumns + `
        FROM organizations
        WHERE user_id = $1
    `
	var org domain.Organization
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&org.ID, &org.UserID, &org.Name, &org.Email, &org.Phone,
		&org.Address, &org.Description, &org.WasteTypes, &org.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find organization by owner", zap.Error(err))
		return nil, err
	}
	return &org, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `
        SELECT ` + organizationColumns + `
        FROM organizations
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list organizations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		err := rows.Scan(
			&org.ID, &org.UserID, &org.Name, &org.Email, &org.Phone,
			&org.Address, &org.Description, &org.WasteTypes, &org.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan organization row", zap.Error(err))
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}
