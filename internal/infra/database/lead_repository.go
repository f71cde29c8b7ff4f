package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, client_id, site_id, name, email, phone, message, url, origin, campaign, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.ClientID,
		nullString(lead.SiteID),
		lead.Name,
		lead.Email,
		lead.Phone,
		nullString(lead.Message),
		nullString(lead.URL),
		lead.Origin,
		lead.Campaign,
		lead.CreatedAt,
	)

	return err
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func (r *LeadRepository) ListByClient(ctx context.Context, clientID string, filter entity.LeadFilter) ([]*entity.Lead, error) {
	query := `
		SELECT id, client_id, COALESCE(site_id, ''), name, email, phone,
		       COALESCE(message, ''), COALESCE(url, ''), origin, campaign, created_at, updated_at
		FROM leads
		WHERE client_id = $1
		  AND ($2 = '' OR origin = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query,
		clientID,
		filter.Origin,
		nullTime(filter.Since),
		nullTime(filter.Until),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.ClientID,
			&lead.SiteID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Message,
			&lead.URL,
			&lead.Origin,
			&lead.Campaign,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) CountByClientSince(ctx context.Context, clientID string, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE client_id = $1 AND created_at >= $2`,
		clientID, since,
	).Scan(&count)
	return count, err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
