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

// supplierService provides supplier registry operations.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// CreateSupplier registers a new supplier.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID:   uuid.NewString(),
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

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

// GetSupplierByID retrieves a supplier by ID.
func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves a paginated list of suppliers.
func (s *supplierService) ListSuppliers(ctx context.Context, params dto.ListPartiesParams) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, params.Limit, params.Offset, params.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplier updates an existing supplier.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.TaxID != nil {
		supplier.TaxID = *req.TaxID
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Observations != nil {
		supplier.Observations = *req.Observations
	}

	supplier.LastUpdatedAt = time.Now().UTC()
	supplier.LastUpdatedBy = requestingUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}

// DeleteSupplier removes a supplier. Existing transactions keep the name snapshot.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		logger.Error("Failed to delete supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
