package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id
  `, email, passwordHash).Scan(&id)
	return id, err
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (User, error) {
	var out User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash
    FROM users
    WHERE email = $1
  `, strings.ToLower(strings.TrimSpace(email))).Scan(&out.ID, &out.Email, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return out, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}
