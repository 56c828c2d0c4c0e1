package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

type supplierService struct {
	repo portsrepo.SupplierRepository
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(repo portsrepo.SupplierRepository) portssvc.SupplierSvcFacade {
	return &supplierService{repo: repo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Materials:  req.Materials,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.User,
			LastUpdatedAt: now,
			LastUpdatedBy: req.User,
		},
	}
	if err := supplier.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.repo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.repo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	suppliers, err := s.repo.ListSuppliers(ctx, limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list suppliers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supplier, err := s.repo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		supplier.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
		updated = true
	}
	if req.Address != nil {
		supplier.Address = *req.Address
		updated = true
	}
	if req.Materials != nil {
		supplier.Materials = *req.Materials
		updated = true
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
		updated = true
	}
	if !updated {
		return supplier, nil
	}

	if err := supplier.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	supplier.LastUpdatedAt = now
	supplier.LastUpdatedBy = req.User

	if err := s.repo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplierID))
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if err := s.repo.SoftDeleteSupplier(ctx, supplierID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return err
	}

	logger.Info("Supplier soft-deleted", slog.String("supplier_id", supplierID))
	return nil
}

func (s *supplierService) PurgeDeleted(ctx context.Context) (int64, error) {
	purged, err := s.repo.PurgeDeletedSuppliers(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to purge deleted suppliers", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to purge deleted suppliers: %w", err)
	}
	return purged, nil
}
