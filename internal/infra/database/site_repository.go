package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type SiteRepository struct {
	DB *sql.DB
}

func NewSiteRepository(db *sql.DB) *SiteRepository {
	return &SiteRepository{DB: db}
}

const siteColumns = `id, client_id, name, domain, whatsapp_number, button_color, position, COALESCE(welcome_message, ''), active, created_at, updated_at`

func (r *SiteRepository) FindByID(ctx context.Context, id string) (*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = $1`

	site, err := scanSite(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSiteNotFound
	}
	return site, err
}

func (r *SiteRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE client_id = $1 ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*entity.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}

func (r *SiteRepository) Create(ctx context.Context, site *entity.Site) error {
	query := `
		INSERT INTO sites (id, client_id, name, domain, whatsapp_number, button_color, position, welcome_message, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`

	_, err := r.DB.ExecContext(ctx, query,
		site.ID,
		site.ClientID,
		site.Name,
		site.Domain,
		site.WhatsAppNumber,
		site.Widget.ButtonColor,
		site.Widget.Position,
		nullString(site.Widget.WelcomeMessage),
		site.Active,
		site.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSite(row rowScanner) (*entity.Site, error) {
	var site entity.Site
	err := row.Scan(
		&site.ID,
		&site.ClientID,
		&site.Name,
		&site.Domain,
		&site.WhatsAppNumber,
		&site.Widget.ButtonColor,
		&site.Widget.Position,
		&site.Widget.WelcomeMessage,
		&site.Active,
		&site.CreatedAt,
		&site.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &site, nil
}
