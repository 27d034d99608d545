package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ProductMetaRepository is the metadata store adapter: generic key/value
// persistence keyed by product id. Absent keys read back as the empty string,
// matching the host platform's metadata semantics.
type ProductMetaRepository interface {
	Get(ctx context.Context, productID int64, key string) (string, error)
	Set(ctx context.Context, productID int64, key, value string) error
	Delete(ctx context.Context, productID int64, key string) error
}

type productMetaRepo struct {
	db DB
}

func NewProductMetaRepository(db DB) ProductMetaRepository {
	return &productMetaRepo{db: db}
}

func (r *productMetaRepo) Get(ctx context.Context, productID int64, key string) (string, error) {
	query := `
		SELECT meta_value FROM product_meta
		WHERE product_id = $1 AND meta_key = $2
	`
	var value string
	err := r.db.QueryRow(ctx, query, productID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *productMetaRepo) Set(ctx context.Context, productID int64, key, value string) error {
	query := `
		INSERT INTO product_meta (product_id, meta_key, meta_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (product_id, meta_key)
		DO UPDATE SET meta_value = EXCLUDED.meta_value, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, productID, key, value)
	return err
}

func (r *productMetaRepo) Delete(ctx context.Context, productID int64, key string) error {
	query := `DELETE FROM product_meta WHERE product_id = $1 AND meta_key = $2`
	_, err := r.db.Exec(ctx, query, productID, key)
	return err
}
