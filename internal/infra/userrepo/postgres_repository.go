package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surgesense/backend/internal/domain/auth"
)

// PostgresRepository persists credentials in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the users table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			email    TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			role     TEXT NOT NULL
		)
	`)
	return err
}

// GetByCredentials fetches the user matching both email and password.
func (r *PostgresRepository) GetByCredentials(ctx context.Context, email, password string) (auth.User, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT email, password, role
		FROM users
		WHERE email = $1 AND password = $2
		LIMIT 1
	`, email, password)
	if err != nil {
		return auth.User{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return auth.User{}, false, rows.Err()
	}
	var user auth.User
	if err := rows.Scan(&user.Email, &user.Password, &user.Role); err != nil {
		return auth.User{}, false, err
	}
	return user, true, rows.Err()
}

// Count reports the number of stored records.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateAll inserts the seed records in one transaction. ON CONFLICT keeps
// the insert idempotent under concurrent startup.
func (r *PostgresRepository) CreateAll(ctx context.Context, users []auth.User) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, user := range users {
			_, err := tx.Exec(ctx, `
				INSERT INTO users (email, password, role)
				VALUES ($1, $2, $3)
				ON CONFLICT (email) DO NOTHING
			`, user.Email, user.Password, user.Role)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

var _ auth.Repository = (*PostgresRepository)(nil)
