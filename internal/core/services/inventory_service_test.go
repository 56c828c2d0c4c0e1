package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/core/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
)

// MockInventoryTxRepository is a mock type for the InventoryTxRepository interface
type MockInventoryTxRepository struct {
	mock.Mock
}

func (m *MockInventoryTxRepository) FindItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryTxRepository) UpdateItemQuantity(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryTxRepository) InsertMovement(ctx context.Context, movement domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

// MockInventoryRepository is a mock type for the InventoryRepository interface.
// WithTx hands the callback the embedded tx mock, mirroring how the real
// repository scopes work to one store transaction.
type MockInventoryRepository struct {
	mock.Mock
	tx *MockInventoryTxRepository
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, limit int, offset int, lowStockOnly bool) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, limit, offset, lowStockOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) SoftDeleteItem(ctx context.Context, itemID string, userID string, now time.Time) error {
	args := m.Called(ctx, itemID, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListMovementsByItem(ctx context.Context, itemID string, limit int, offset int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, itemID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockInventoryRepository) PurgeDeletedItems(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.InventoryTxRepository) error) error {
	return fn(ctx, m.tx)
}

// --- Test Suite Setup ---

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInventoryRepository
	service  portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockInventoryRepository{tx: new(MockInventoryTxRepository)}
	suite.service = services.NewInventoryService(suite.mockRepo)
}

func storedItem(quantity float64) *domain.InventoryItem {
	return &domain.InventoryItem{
		ItemID:           uuid.NewString(),
		ItemType:         "cotton",
		Color:            "white",
		Quantity:         quantity,
		Unit:             "meter",
		Price:            decimal.NewFromInt(25),
		Location:         "warehouse A",
		Supplier:         "Nile Textiles",
		MinimumThreshold: 10,
	}
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	req := dto.CreateInventoryItemRequest{
		ItemType:         "cotton",
		Color:            "white",
		Quantity:         100,
		Unit:             "meter",
		Price:            decimal.NewFromInt(25),
		MinimumThreshold: 10,
		User:             "admin",
	}

	suite.mockRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(nil).Once()

	created, err := suite.service.CreateItem(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ItemID)
	suite.Equal(req.ItemType, created.ItemType)
	suite.Equal(req.Quantity, created.Quantity)
	suite.Equal("admin", created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_ValidationError() {
	ctx := context.Background()
	req := dto.CreateInventoryItemRequest{
		Unit: "meter",
		User: "admin",
	}

	created, err := suite.service.CreateItem(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestGetItemByID_NotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.GetItemByID(ctx, itemID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(item)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestApplyMovement_OutboundSuccess() {
	ctx := context.Background()
	existing := storedItem(100)

	suite.mockRepo.tx.On("FindItemForUpdate", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockRepo.tx.On("UpdateItemQuantity", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(nil).Once()
	suite.mockRepo.tx.On("InsertMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()

	item, movement, err := suite.service.ApplyMovement(ctx, existing.ItemID, dto.ApplyMovementRequest{
		Operation: "out",
		Quantity:  30,
		User:      "admin",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Require().NotNil(movement)
	suite.Equal(70.0, item.Quantity)
	suite.Equal(100.0, movement.PreviousQuantity)
	suite.Equal(70.0, movement.NewQuantity)
	suite.Equal(domain.MovementOut, movement.Operation)
	suite.NotEmpty(movement.MovementID)

	suite.mockRepo.tx.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestApplyMovement_InsufficientStock() {
	ctx := context.Background()
	existing := storedItem(50)

	suite.mockRepo.tx.On("FindItemForUpdate", ctx, existing.ItemID).Return(existing, nil).Once()

	item, movement, err := suite.service.ApplyMovement(ctx, existing.ItemID, dto.ApplyMovementRequest{
		Operation: "out",
		Quantity:  80,
		User:      "admin",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, ledger.ErrInsufficientStock)
	suite.Nil(item)
	suite.Nil(movement)

	// Nothing must be written when the ledger rejects the movement.
	suite.mockRepo.tx.AssertNotCalled(suite.T(), "UpdateItemQuantity", mock.Anything, mock.Anything)
	suite.mockRepo.tx.AssertNotCalled(suite.T(), "InsertMovement", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestApplyMovement_UnknownOperation() {
	ctx := context.Background()

	item, movement, err := suite.service.ApplyMovement(ctx, uuid.NewString(), dto.ApplyMovementRequest{
		Operation: "transfer",
		Quantity:  10,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
	suite.Nil(movement)
}

func (suite *InventoryServiceTestSuite) TestApplyMovement_ItemNotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockRepo.tx.On("FindItemForUpdate", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.ApplyMovement(ctx, itemID, dto.ApplyMovementRequest{
		Operation: "in",
		Quantity:  5,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_DoesNotTouchQuantity() {
	ctx := context.Background()
	existing := storedItem(42)
	newColor := "indigo"

	suite.mockRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.Quantity == 42 && item.Color == "indigo"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, existing.ItemID, dto.UpdateInventoryItemRequest{
		Color: &newColor,
		User:  "admin",
	})

	suite.Require().NoError(err)
	suite.Equal(42.0, updated.Quantity)
	suite.Equal("indigo", updated.Color)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestDeleteItem_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockRepo.On("SoftDeleteItem", ctx, itemID, "admin", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteItem(ctx, itemID, "admin")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListItems_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListItems", ctx, 50, 0, false).Return([]domain.InventoryItem{*storedItem(5)}, nil).Once()

	items, err := suite.service.ListItems(ctx, dto.ListInventoryParams{})

	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListMovements_ItemMustExist() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	movements, err := suite.service.ListMovements(ctx, itemID, dto.ListMovementsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(movements)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListMovementsByItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestPurgeDeleted() {
	ctx := context.Background()

	suite.mockRepo.On("PurgeDeletedItems", ctx).Return(int64(3), nil).Once()

	purged, err := suite.service.PurgeDeleted(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), purged)
}

func (suite *InventoryServiceTestSuite) TestPurgeDeleted_Error() {
	ctx := context.Background()

	suite.mockRepo.On("PurgeDeletedItems", ctx).Return(int64(0), fmt.Errorf("db down")).Once()

	_, err := suite.service.PurgeDeleted(ctx)

	suite.Require().Error(err)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
