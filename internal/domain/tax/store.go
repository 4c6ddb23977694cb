package tax

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("paycheck profile not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// GetProfile returns the user's single paycheck profile.
func (s *Store) GetProfile(ctx context.Context, userID string) (Profile, error) {
	var out Profile
	err := s.DB.QueryRow(ctx, `
    SELECT id, user_id, gross_salary_annual, state, visa_status, filing_status, created_at, updated_at
    FROM paycheck_profiles
    WHERE user_id = $1
  `, userID).Scan(&out.ID, &out.UserID, &out.GrossSalaryAnnual, &out.State,
		&out.VisaStatus, &out.FilingStatus, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrProfileNotFound
	}
	return out, err
}

// UpsertProfile writes the user's paycheck profile, one row per user.
func (s *Store) UpsertProfile(ctx context.Context, profile Profile) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO paycheck_profiles (user_id, gross_salary_annual, state, visa_status, filing_status)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (user_id)
    DO UPDATE SET gross_salary_annual = EXCLUDED.gross_salary_annual,
                  state = EXCLUDED.state,
                  visa_status = EXCLUDED.visa_status,
                  filing_status = EXCLUDED.filing_status,
                  updated_at = now()
    RETURNING id
  `, profile.UserID, profile.GrossSalaryAnnual, profile.State, profile.VisaStatus, profile.FilingStatus).Scan(&id)
	return id, err
}
