package services_test

import (
	"context"
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

// MockEmployeeTxRepository is a mock type for the EmployeeTxRepository interface
type MockEmployeeTxRepository struct {
	mock.Mock
}

func (m *MockEmployeeTxRepository) FindEmployeeForUpdate(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeTxRepository) UpdateEmployeeLedger(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeTxRepository) InsertSalaryTransaction(ctx context.Context, txn domain.SalaryTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockEmployeeTxRepository) InsertAttendanceRecord(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockEmployeeRepository is a mock type for the EmployeeRepository interface.
type MockEmployeeRepository struct {
	mock.Mock
	tx *MockEmployeeTxRepository
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SoftDeleteEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	args := m.Called(ctx, employeeID, userID, now)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ListTransactionsByEmployee(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryTransaction), args.Error(1)
}

func (m *MockEmployeeRepository) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockEmployeeRepository) PurgeDeletedEmployees(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.EmployeeTxRepository) error) error {
	return fn(ctx, m.tx)
}

// --- Test Suite Setup ---

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockEmployeeRepository{tx: new(MockEmployeeTxRepository)}
	suite.service = services.NewEmployeeService(suite.mockRepo)
}

func storedEmployee(salary, paid int64) *domain.Employee {
	s := decimal.NewFromInt(salary)
	p := decimal.NewFromInt(paid)
	return &domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       "Ahmed",
		Position:   "weaver",
		Salary:     s,
		Paid:       p,
		Remaining:  s.Sub(p),
		Status:     domain.EmployeeActive,
	}
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:     "Ahmed",
		Position: "weaver",
		Salary:   decimal.NewFromInt(3000),
		User:     "admin",
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.EmployeeID)
	suite.True(created.Paid.IsZero())
	suite.True(created.Remaining.Equal(req.Salary))
	suite.Equal(domain.EmployeeActive, created.Status)
	suite.Equal("admin", created.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MissingName() {
	ctx := context.Background()

	created, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{Salary: decimal.NewFromInt(1000)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeByID_LoadsHistories() {
	ctx := context.Background()
	emp := storedEmployee(3000, 500)

	txns := []domain.SalaryTransaction{{TransactionID: uuid.NewString(), EmployeeID: emp.EmployeeID, Type: domain.TxnBonus}}
	attendance := []domain.AttendanceRecord{{RecordID: uuid.NewString(), EmployeeID: emp.EmployeeID, Status: domain.AttendancePresent}}

	suite.mockRepo.On("FindEmployeeByID", ctx, emp.EmployeeID).Return(emp, nil).Once()
	suite.mockRepo.On("ListTransactionsByEmployee", ctx, emp.EmployeeID).Return(txns, nil).Once()
	suite.mockRepo.On("ListAttendanceByEmployee", ctx, emp.EmployeeID).Return(attendance, nil).Once()

	got, err := suite.service.GetEmployeeByID(ctx, emp.EmployeeID)

	suite.Require().NoError(err)
	suite.Len(got.SalaryTransactions, 1)
	suite.Len(got.Attendance, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestApplyTransaction_BonusSuccess() {
	ctx := context.Background()
	emp := storedEmployee(1000, 200)

	suite.mockRepo.tx.On("FindEmployeeForUpdate", ctx, emp.EmployeeID).Return(emp, nil).Once()
	suite.mockRepo.tx.On("UpdateEmployeeLedger", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()
	suite.mockRepo.tx.On("InsertSalaryTransaction", ctx, mock.AnythingOfType("domain.SalaryTransaction")).Return(nil).Once()

	updated, txn, err := suite.service.ApplyTransaction(ctx, emp.EmployeeID, dto.ApplySalaryTransactionRequest{
		Type:   "bonus",
		Amount: decimal.NewFromInt(100),
		User:   "admin",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Require().NotNil(txn)
	suite.True(updated.Salary.Equal(decimal.NewFromInt(1100)))
	suite.True(updated.Paid.Equal(decimal.NewFromInt(300)))
	suite.True(updated.Remaining.Equal(decimal.NewFromInt(800)))
	suite.Equal(domain.TxnBonus, txn.Type)
	suite.NotEmpty(txn.TransactionID)

	suite.mockRepo.tx.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestApplyTransaction_UnknownType() {
	ctx := context.Background()

	updated, txn, err := suite.service.ApplyTransaction(ctx, uuid.NewString(), dto.ApplySalaryTransactionRequest{
		Type:   "loan",
		Amount: decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, ledger.ErrInvalidTransaction)
	suite.Nil(updated)
	suite.Nil(txn)
}

func (suite *EmployeeServiceTestSuite) TestApplyTransaction_ZeroAmountRejected() {
	ctx := context.Background()
	emp := storedEmployee(1000, 0)

	suite.mockRepo.tx.On("FindEmployeeForUpdate", ctx, emp.EmployeeID).Return(emp, nil).Once()

	_, _, err := suite.service.ApplyTransaction(ctx, emp.EmployeeID, dto.ApplySalaryTransactionRequest{
		Type:   "payment",
		Amount: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, ledger.ErrInvalidTransaction)
	suite.mockRepo.tx.AssertNotCalled(suite.T(), "UpdateEmployeeLedger", mock.Anything, mock.Anything)
	suite.mockRepo.tx.AssertNotCalled(suite.T(), "InsertSalaryTransaction", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestMarkAttendance_Present() {
	ctx := context.Background()
	emp := storedEmployee(3000, 0)
	emp.Status = domain.EmployeeAbsent

	suite.mockRepo.tx.On("FindEmployeeForUpdate", ctx, emp.EmployeeID).Return(emp, nil).Once()
	suite.mockRepo.tx.On("UpdateEmployeeLedger", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()
	suite.mockRepo.tx.On("InsertAttendanceRecord", ctx, mock.AnythingOfType("domain.AttendanceRecord")).Return(nil).Once()

	updated, record, err := suite.service.MarkAttendance(ctx, emp.EmployeeID, dto.MarkAttendanceRequest{
		Status: "present",
		User:   "admin",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Require().NotNil(record)
	suite.Equal(ledger.WorkdayHours, updated.HoursWorked)
	suite.Equal(domain.EmployeeActive, updated.Status)
	suite.Require().NotNil(updated.LastWorkDate)
	suite.Equal(domain.AttendancePresent, record.Status)

	suite.mockRepo.tx.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestMarkAttendance_InvalidStatus() {
	ctx := context.Background()

	_, _, err := suite.service.MarkAttendance(ctx, uuid.NewString(), dto.MarkAttendanceRequest{Status: "late"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestGetPerformance_ScoreInRange() {
	ctx := context.Background()
	emp := storedEmployee(3000, 2500)
	emp.HoursWorked = 120
	emp.Overtime = 4
	emp.Absences = 2

	now := time.Now().UTC()
	attendance := []domain.AttendanceRecord{
		{RecordID: uuid.NewString(), EmployeeID: emp.EmployeeID, Date: now.AddDate(0, 0, -1), Status: domain.AttendancePresent},
		{RecordID: uuid.NewString(), EmployeeID: emp.EmployeeID, Date: now.AddDate(0, 0, -2), Status: domain.AttendancePresent},
		{RecordID: uuid.NewString(), EmployeeID: emp.EmployeeID, Date: now.AddDate(0, 0, -3), Status: domain.AttendanceAbsent},
	}

	suite.mockRepo.On("FindEmployeeByID", ctx, emp.EmployeeID).Return(emp, nil).Once()
	suite.mockRepo.On("ListAttendanceByEmployee", ctx, emp.EmployeeID).Return(attendance, nil).Once()

	perf, err := suite.service.GetPerformance(ctx, emp.EmployeeID)

	suite.Require().NoError(err)
	suite.Require().NotNil(perf)
	suite.Equal(emp.EmployeeID, perf.EmployeeID)
	suite.GreaterOrEqual(perf.Score, 0.0)
	suite.LessOrEqual(perf.Score, 100.0)
	suite.Equal(emp.HoursWorked, perf.HoursWorked)
	suite.Equal(emp.Overtime, perf.Overtime)
	suite.Equal(emp.Absences, perf.Absences)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_SalaryChangeRecomputesRemaining() {
	ctx := context.Background()
	emp := storedEmployee(3000, 1000)
	newSalary := decimal.NewFromInt(3500)

	suite.mockRepo.On("FindEmployeeByID", ctx, emp.EmployeeID).Return(emp, nil).Once()
	suite.mockRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Salary.Equal(newSalary) && e.Remaining.Equal(decimal.NewFromInt(2500))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, emp.EmployeeID, dto.UpdateEmployeeRequest{
		Salary: &newSalary,
		User:   "admin",
	})

	suite.Require().NoError(err)
	suite.True(updated.Remaining.Equal(decimal.NewFromInt(2500)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("SoftDeleteEmployee", ctx, employeeID, "admin", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, employeeID, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
