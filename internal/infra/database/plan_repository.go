package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type PlanRepository struct {
	DB *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	query := `SELECT id, name, price_cents, max_sites, max_leads_per_month FROM plans WHERE id = $1`

	var plan entity.Plan
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.PriceCents,
		&plan.MaxSites,
		&plan.MaxLeadsPerMonth,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
