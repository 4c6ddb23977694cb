package expense

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrExpenseNotFound = errors.New("expense not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListExpenses returns the user's expenses, optionally bounded to [from, to).
// Zero bounds are open.
func (s *Store) ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]Expense, error) {
	query := `
    SELECT id, user_id, name, amount, category, expense_type, expense_date, created_at
    FROM expenses
    WHERE user_id = $1`
	args := []any{userID}
	if !from.IsZero() {
		args = append(args, from)
		query += ` AND expense_date >= $2`
	}
	if !to.IsZero() {
		args = append(args, to)
		if len(args) == 3 {
			query += ` AND expense_date < $3`
		} else {
			query += ` AND expense_date < $2`
		}
	}
	query += ` ORDER BY expense_date DESC, created_at DESC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Category, &e.Type, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) CreateExpense(ctx context.Context, e Expense) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO expenses (user_id, name, amount, category, expense_type, expense_date)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, e.UserID, e.Name, e.Amount, e.Category, e.Type, e.Date).Scan(&id)
	return id, err
}

func (s *Store) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM expenses WHERE user_id = $1 AND id = $2", userID, expenseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
