package repository

import (
	"context"
	"errors"

	"extinguard/internal/domain/user"
	"extinguard/internal/infra"
	"extinguard/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, string, error) {
	var (
		rm   readmodel.UserRM
		hash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, address, role, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Address, &rm.Role, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	var rm readmodel.UserRM
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, address, role FROM users WHERE id = $1`,
		id,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Address, &rm.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*readmodel.UserRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, address, role FROM users ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	users := []*readmodel.UserRM{}
	for rows.Next() {
		var rm readmodel.UserRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Address, &rm.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, phone, address, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		u.Name(), u.Email().Value(), u.PasswordHash(), u.Phone(), u.Address(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &readmodel.UserRM{
		ID:      id,
		Name:    u.Name(),
		Email:   u.Email().Value(),
		Phone:   u.Phone(),
		Address: u.Address(),
		Role:    u.Role().String(),
	}, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
