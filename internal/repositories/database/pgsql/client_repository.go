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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client registry data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `
	client_id, name, tax_id, phone, email, address, observations,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveClient persists a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.Name, m.TaxID, m.Phone, m.Email, m.Address, m.Observations,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert client "+m.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its unique identifier.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID, &m.Name, &m.TaxID, &m.Phone, &m.Email, &m.Address, &m.Observations,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client "+clientID, err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

// ListClients retrieves a paginated list of clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit, offset int, name *string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if name != nil && *name != "" {
		args = append(args, *name+"%")
		query += ` WHERE name ILIKE $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list clients", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID, &m.Name, &m.TaxID, &m.Phone, &m.Email, &m.Address, &m.Observations,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating client rows", err)
	}
	return mapping.ToDomainClientSlice(clients), nil
}

// UpdateClient updates an existing client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, tax_id = $3, phone = $4, email = $5, address = $6, observations = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.Name, m.TaxID, m.Phone, m.Email, m.Address, m.Observations,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update client "+m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client from the registry.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete client "+clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
