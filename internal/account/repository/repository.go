package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/common/db"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type Repository interface {
	Create(ctx context.Context, user domain.User) error
	Save(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ListWithTokens(ctx context.Context) ([]domain.User, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, description, picture, link, tokens, created_at, updated_at`

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(user.ID),
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Description,
		user.Picture,
		user.Link,
		tokensArray(user.Tokens),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if mapped := mapUniqueViolation(err); mapped != nil {
		db.MeasureQueryDuration("create user", start)
		return mapped
	}
	return db.HandleExecError(err, "create user", start)
}

// Save writes the full record in one statement, so concurrent writers
// cannot interleave partial field updates.
func (r *PgRepository) Save(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		 	username = EXCLUDED.username,
		 	email = EXCLUDED.email,
		 	password_hash = EXCLUDED.password_hash,
		 	description = EXCLUDED.description,
		 	picture = EXCLUDED.picture,
		 	link = EXCLUDED.link,
		 	tokens = EXCLUDED.tokens,
		 	updated_at = EXCLUDED.updated_at`,
		string(user.ID),
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Description,
		user.Picture,
		user.Link,
		tokensArray(user.Tokens),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if mapped := mapUniqueViolation(err); mapped != nil {
		db.MeasureQueryDuration("save user", start)
		return mapped
	}
	return db.HandleExecError(err, "save user", start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		string(id),
	)
	return scanUser(row, "find user by id", start)
}

func (r *PgRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row, "find user by email", start)
}

func (r *PgRepository) ListWithTokens(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE cardinality(tokens) > 0`,
	)
	if err != nil {
		return nil, db.HandleQueryError(err, nil, "list users with tokens", start)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Description,
			&user.Picture,
			&user.Link,
			&user.Tokens,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, db.HandleQueryError(err, nil, "list users with tokens", start)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, db.HandleQueryError(rows.Err(), nil, "list users with tokens", start)
	}

	db.MeasureQueryDuration("list users with tokens", start)
	return users, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner, operation string, start time.Time) (domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Description,
		&user.Picture,
		&user.Link,
		&user.Tokens,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err := db.HandleQueryError(err, ErrUserNotFound, operation, start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// tokensArray keeps an empty list as an empty text[] rather than NULL.
func tokensArray(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// mapUniqueViolation tells id collisions apart from email collisions by
// the violated constraint. Returns nil for anything else.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if pgErr.ConstraintName == "users_pkey" {
		return ErrUserAlreadyExists
	}
	return ErrEmailAlreadyExists
}
