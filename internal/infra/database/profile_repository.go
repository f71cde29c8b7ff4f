package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type ProfileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `SELECT id, email, name, role FROM profiles WHERE LOWER(email) = LOWER($1)`

	var profile entity.Profile
	err := r.DB.QueryRowContext(ctx, query, strings.TrimSpace(email)).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Name,
		&profile.Role,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
