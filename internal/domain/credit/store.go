package credit

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const cardColumns = `
    id, user_id, name, last_four, credit_limit, current_balance, interest_rate,
    minimum_payment, due_date_type, due_date_day, statement_date,
    days_after_statement, due_date, last_paid_date, last_paid_amount,
    created_at, updated_at`

func scanCard(row pgx.Row) (Card, error) {
	var out Card
	err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.LastFour,
		&out.CreditLimit, &out.CurrentBalance, &out.InterestRate,
		&out.MinimumPayment, &out.DueDateType, &out.DueDateDay,
		&out.StatementDate, &out.DaysAfterStatement, &out.DueDate,
		&out.LastPaidDate, &out.LastPaidAmount, &out.CreatedAt, &out.UpdatedAt)
	return out, err
}

func (s *Store) ListCards(ctx context.Context, userID string) ([]Card, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+cardColumns+`
    FROM credit_cards
    WHERE user_id = $1
    ORDER BY created_at
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// ListAllCards returns every card in the system, for the scheduled due-date
// refresh.
func (s *Store) ListAllCards(ctx context.Context) ([]Card, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+cardColumns+`
    FROM credit_cards
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (s *Store) GetCard(ctx context.Context, userID, cardID string) (Card, error) {
	card, err := scanCard(s.DB.QueryRow(ctx, `
    SELECT `+cardColumns+`
    FROM credit_cards
    WHERE user_id = $1 AND id = $2
  `, userID, cardID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Card{}, ErrCardNotFound
	}
	return card, err
}

func (s *Store) CreateCard(ctx context.Context, card Card) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO credit_cards (
      user_id, name, last_four, credit_limit, current_balance, interest_rate,
      minimum_payment, due_date_type, due_date_day, statement_date,
      days_after_statement, due_date, last_paid_date, last_paid_amount
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
    RETURNING id
  `, card.UserID, card.Name, card.LastFour, card.CreditLimit, card.CurrentBalance,
		card.InterestRate, card.MinimumPayment, card.DueDateType, card.DueDateDay,
		card.StatementDate, card.DaysAfterStatement, card.DueDate,
		card.LastPaidDate, card.LastPaidAmount).Scan(&id)
	return id, err
}

func (s *Store) UpdateCard(ctx context.Context, card Card) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE credit_cards
    SET name = $1, last_four = $2, credit_limit = $3, current_balance = $4,
        interest_rate = $5, minimum_payment = $6, due_date_type = $7,
        due_date_day = $8, statement_date = $9, days_after_statement = $10,
        due_date = $11, last_paid_date = $12, last_paid_amount = $13,
        updated_at = now()
    WHERE user_id = $14 AND id = $15
  `, card.Name, card.LastFour, card.CreditLimit, card.CurrentBalance,
		card.InterestRate, card.MinimumPayment, card.DueDateType, card.DueDateDay,
		card.StatementDate, card.DaysAfterStatement, card.DueDate,
		card.LastPaidDate, card.LastPaidAmount, card.UserID, card.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (s *Store) DeleteCard(ctx context.Context, userID, cardID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM credit_cards WHERE user_id = $1 AND id = $2", userID, cardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCardNotFound
	}
	return nil
}

// UpdateDueDate persists a recomputed due date. The engine guarantees the
// forward-only invariant before this is called.
func (s *Store) UpdateDueDate(ctx context.Context, cardID string, due time.Time) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE credit_cards SET due_date = $1, updated_at = now() WHERE id = $2
  `, due, cardID)
	return err
}
