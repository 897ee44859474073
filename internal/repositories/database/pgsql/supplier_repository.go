package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	"github.com/gestcom/gestcom_backend/internal/models"
	"github.com/gestcom/gestcom_backend/internal/utils/mapping"
)

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier registry data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `
	supplier_id, name, tax_id, phone, email, address, observations,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveSupplier persists a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.TaxID, m.Phone, m.Email, m.Address, m.Observations,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert supplier "+m.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its unique identifier.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`

	var m models.Supplier
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(
		&m.SupplierID, &m.Name, &m.TaxID, &m.Phone, &m.Email, &m.Address, &m.Observations,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find supplier "+supplierID, err)
	}

	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

// ListSuppliers retrieves a paginated list of suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit, offset int, name *string) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	args := []any{}
	if name != nil && *name != "" {
		args = append(args, *name+"%")
		query += ` WHERE name ILIKE $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list suppliers", err)
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var m models.Supplier
		if err := rows.Scan(
			&m.SupplierID, &m.Name, &m.TaxID, &m.Phone, &m.Email, &m.Address, &m.Observations,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan supplier row", err)
		}
		suppliers = append(suppliers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating supplier rows", err)
	}
	return mapping.ToDomainSupplierSlice(suppliers), nil
}

// UpdateSupplier updates an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $2, tax_id = $3, phone = $4, email = $5, address = $6, observations = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.TaxID, m.Phone, m.Email, m.Address, m.Observations,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update supplier "+m.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier from the registry.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete supplier "+supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
