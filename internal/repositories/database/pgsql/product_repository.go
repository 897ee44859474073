package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	"github.com/gestcom/gestcom_backend/internal/models"
	"github.com/gestcom/gestcom_backend/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `
	product_id, name, description, sale_price, purchase_price, stock, product_group,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveProduct persists a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	modelProduct := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.Name,
		modelProduct.Description,
		modelProduct.SalePrice,
		modelProduct.PurchasePrice,
		modelProduct.Stock,
		modelProduct.Group,
		modelProduct.CreatedAt,
		modelProduct.CreatedBy,
		modelProduct.LastUpdatedAt,
		modelProduct.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: product %s already exists", apperrors.ErrDuplicate, modelProduct.Name)
		}
		return apperrors.NewAppError(500, "failed to insert product "+modelProduct.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its unique identifier.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product "+productID, err)
	}

	product := mapping.ToDomainProduct(*modelProduct)
	return &product, nil
}

// FindProductsByIDs retrieves products for the given IDs, keyed by product ID.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	result := make(map[string]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		modelProduct, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		result[modelProduct.ProductID] = mapping.ToDomainProduct(*modelProduct)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating product rows", err)
	}
	return result, nil
}

// ListProducts retrieves a paginated list of products ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit, offset int, name *string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if name != nil && *name != "" {
		args = append(args, *name+"%")
		query += ` WHERE name ILIKE $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		modelProduct, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, *modelProduct)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating product rows", err)
	}
	return mapping.ToDomainProductSlice(products), nil
}

// UpdateProduct updates an existing product's catalog fields. Stock changes
// go through the transaction repository only.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	modelProduct := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, description = $3, sale_price = $4, purchase_price = $5, product_group = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.Name,
		modelProduct.Description,
		modelProduct.SalePrice,
		modelProduct.PurchasePrice,
		modelProduct.Group,
		modelProduct.LastUpdatedAt,
		modelProduct.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+modelProduct.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product from the catalog.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete product "+productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanProduct scans one product row.
func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Description,
		&m.SalePrice,
		&m.PurchasePrice,
		&m.Stock,
		&m.Group,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
