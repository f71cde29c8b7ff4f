package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, profile_id, company_name, plan_id, status, created_at, updated_at`

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *ClientRepository) FindByProfileID(ctx context.Context, profileID string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE profile_id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, profileID))
}

func (r *ClientRepository) scanOne(row *sql.Row) (*entity.Client, error) {
	var client entity.Client
	err := row.Scan(
		&client.ID,
		&client.ProfileID,
		&client.CompanyName,
		&client.PlanID,
		&client.Status,
		&client.CreatedAt,
		&client.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// FindOwnerEmail resolve o e-mail do perfil dono da conta (usado pelo worker
// de notificação).
func (r *ClientRepository) FindOwnerEmail(ctx context.Context, clientID string) (string, error) {
	query := `
		SELECT p.email
		FROM clients c
		JOIN profiles p ON p.id = c.profile_id
		WHERE c.id = $1
	`

	var email string
	err := r.DB.QueryRowContext(ctx, query, clientID).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entity.ErrClientNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
