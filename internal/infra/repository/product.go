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

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, c.id, c.name
	FROM products p
	JOIN categories c ON c.id = p.category_id`

func (r *ProductRepository) FindAll(ctx context.Context) ([]*readmodel.ProductRM, error) {
	rows, err := r.pool.Query(ctx, productSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	products := []*readmodel.ProductRM{}
	for rows.Next() {
		rm, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*readmodel.ProductRM, error) {
	row := r.pool.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id)
	return scanProduct(row)
}

func (r *ProductRepository) Create(ctx context.Context, p catalog.Product) (*readmodel.ProductRM, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, stock, category_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.Name, p.Description, p.Price, p.Stock, p.CategoryID,
	).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeForeignKeyViolation) {
			return nil, infra.WrapRepoErr("category does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create product", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanProduct(row pgx.Row) (*readmodel.ProductRM, error) {
	var rm readmodel.ProductRM
	err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.Price, &rm.Stock,
		&rm.Category.ID, &rm.Category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan product row", err)
	}
	return &rm, nil
}
