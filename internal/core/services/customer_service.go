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

type customerService struct {
	repo portsrepo.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{repo: repo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		TotalOrders: req.TotalOrders,
		TotalPaid:   req.TotalPaid,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.User,
			LastUpdatedAt: now,
			LastUpdatedBy: req.User,
		},
	}
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.repo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	customers, err := s.repo.ListCustomers(ctx, limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list customers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		customer.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
		updated = true
	}
	if req.Address != nil {
		customer.Address = *req.Address
		updated = true
	}
	if req.TotalOrders != nil {
		customer.TotalOrders = *req.TotalOrders
		updated = true
	}
	if req.TotalPaid != nil {
		customer.TotalPaid = *req.TotalPaid
		updated = true
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
		updated = true
	}
	if !updated {
		return customer, nil
	}

	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	customer.LastUpdatedAt = now
	customer.LastUpdatedBy = req.User

	if err := s.repo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	logger.Info("Customer updated", slog.String("customer_id", customerID))
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if err := s.repo.SoftDeleteCustomer(ctx, customerID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return err
	}

	logger.Info("Customer soft-deleted", slog.String("customer_id", customerID))
	return nil
}

func (s *customerService) PurgeDeleted(ctx context.Context) (int64, error) {
	purged, err := s.repo.PurgeDeletedCustomers(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to purge deleted customers", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to purge deleted customers: %w", err)
	}
	return purged, nil
}
