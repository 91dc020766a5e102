package repository

import (
	"context"
	"errors"

	"extinguard/internal/domain/catalog"
	"extinguard/internal/infra"
	"extinguard/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*readmodel.CategoryRM, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	categories := []*readmodel.CategoryRM{}
	for rows.Next() {
		var rm readmodel.CategoryRM
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		categories = append(categories, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category rows", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*readmodel.CategoryRM, error) {
	var rm readmodel.CategoryRM
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&rm.ID, &rm.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return &rm, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c catalog.Category) (*readmodel.CategoryRM, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return nil, infra.WrapRepoErr("category already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create category", err)
	}
	return &readmodel.CategoryRM{ID: id, Name: c.Name}, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeForeignKeyViolation) {
			return infra.WrapRepoErr("category still has products", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
