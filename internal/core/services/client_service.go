package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
	"github.com/gestcom/gestcom_backend/internal/middleware"
)

// clientService provides client registry operations.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:     uuid.NewString(),
		Name:         req.Name,
		TaxID:        req.TaxID,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Observations: req.Observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a client by ID.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (s *clientService) ListClients(ctx context.Context, params dto.ListPartiesParams) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, params.Limit, params.Offset, params.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient updates an existing client.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Observations != nil {
		client.Observations = *req.Observations
	}

	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = requestingUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		logger.Error("Failed to update client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient removes a client. Existing transactions keep the name snapshot.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		logger.Error("Failed to delete client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}

	logger.Info("Client deleted", slog.String("client_id", clientID))
	return nil
}
