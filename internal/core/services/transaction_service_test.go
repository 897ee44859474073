package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/core/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, txnType domain.TransactionType, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, txnType, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) MaxSequenceNumber(ctx context.Context, txnType domain.TransactionType) (int64, error) {
	args := m.Called(ctx, txnType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]int64) error {
	args := m.Called(ctx, txn, stockDeltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) AddPayment(ctx context.Context, transactionID string, payment domain.PaymentRecord, bank string, updatedBy string, updatedAt time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, payment, bank, updatedBy, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, reversalDeltas map[string]int64) error {
	args := m.Called(ctx, transactionID, reversalDeltas)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit, offset int, name *string) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit, offset int, name *string) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit, offset int, name *string) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockProductRepo  *MockProductRepository
	mockClientRepo   *MockClientRepository
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.TransactionSvcFacade
	ctx              context.Context
	userID           string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockProductRepo = new(MockProductRepository)
	s.mockClientRepo = new(MockClientRepository)
	s.mockSupplierRepo = new(MockSupplierRepository)
	s.service = services.NewTransactionService(s.mockTxnRepo, s.mockProductRepo, s.mockClientRepo, s.mockSupplierRepo)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) client() *domain.Client {
	return &domain.Client{ClientID: "client-1", Name: "ACME"}
}

func (s *TransactionServiceTestSuite) supplier() *domain.Supplier {
	return &domain.Supplier{SupplierID: "supplier-1", Name: "WHOLESALE CO"}
}

func (s *TransactionServiceTestSuite) saleRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		CounterpartyID: "client-1",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateLineItemRequest{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		},
	}
}

func (s *TransactionServiceTestSuite) catalog() map[string]domain.Product {
	return map[string]domain.Product{
		"p1": {ProductID: "p1", Name: "WIDGET", Stock: 10},
		"p2": {ProductID: "p2", Name: "GADGET", Stock: 4},
	}
}

// --- CreateTransaction ---

func (s *TransactionServiceTestSuite) TestCreateTransaction_Sale_Success() {
	req := s.saleRequest()

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(s.client(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Once()
	s.mockTxnRepo.On("MaxSequenceNumber", s.ctx, domain.Sale).Return(int64(41), nil).Once()
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), map[string]int64{"p1": -3, "p2": -1}).Return(nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Once()

	txn, affected, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	require.NoError(s.T(), err)
	require.NotNil(s.T(), txn)
	assert.Equal(s.T(), int64(42), txn.SequenceNumber)
	assert.Equal(s.T(), "ACME", txn.CounterpartyName)
	assert.Equal(s.T(), domain.Pending, txn.Status)
	assert.True(s.T(), txn.Total.Equal(decimal.NewFromInt(35)))
	assert.True(s.T(), txn.RemainingAmount.Equal(decimal.NewFromInt(35)))
	assert.Equal(s.T(), "WIDGET", txn.Items[0].ProductName)
	assert.Len(s.T(), affected, 2)
	s.mockTxnRepo.AssertExpectations(s.T())
	s.mockClientRepo.AssertExpectations(s.T())
	s.mockProductRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Purchase_PositiveDeltas() {
	req := dto.CreateTransactionRequest{
		CounterpartyID: "supplier-1",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateLineItemRequest{
			{ProductID: "p1", Quantity: 7, UnitPrice: decimal.NewFromInt(6)},
		},
	}

	s.mockSupplierRepo.On("FindSupplierByID", s.ctx, "supplier-1").Return(s.supplier(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Twice()
	s.mockTxnRepo.On("MaxSequenceNumber", s.ctx, domain.Purchase).Return(int64(0), nil).Once()
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), map[string]int64{"p1": 7}).Return(nil).Once()

	txn, _, err := s.service.CreateTransaction(s.ctx, domain.Purchase, req, s.userID)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), txn.SequenceNumber)
	assert.Equal(s.T(), "WHOLESALE CO", txn.CounterpartyName)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownProductGetsPlaceholderAndNoStockEffect() {
	req := dto.CreateTransactionRequest{
		CounterpartyID: "client-1",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateLineItemRequest{
			{ProductID: "ghost", Quantity: 2, UnitPrice: decimal.NewFromInt(3)},
		},
	}

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(s.client(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.Product{}, nil).Once()
	s.mockTxnRepo.On("MaxSequenceNumber", s.ctx, domain.Sale).Return(int64(5), nil).Once()
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), map[string]int64{}).Return(nil).Once()

	txn, affected, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.UnknownProductName, txn.Items[0].ProductName)
	assert.Empty(s.T(), affected)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_TotalMismatchRejected() {
	req := s.saleRequest()
	wrong := decimal.NewFromInt(99)
	req.Total = &wrong

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(s.client(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_MatchingTotalAccepted() {
	req := s.saleRequest()
	right := decimal.NewFromInt(35)
	req.Total = &right

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(s.client(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Twice()
	s.mockTxnRepo.On("MaxSequenceNumber", s.ctx, domain.Sale).Return(int64(1), nil).Once()
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	require.NoError(s.T(), err)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_InsufficientStockPreCheck() {
	req := dto.CreateTransactionRequest{
		CounterpartyID: "client-1",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateLineItemRequest{
			{ProductID: "p2", Quantity: 9, UnitPrice: decimal.NewFromInt(5)},
		},
	}

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(s.client(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrInsufficientStock)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownClientRejected() {
	req := s.saleRequest()

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_SequenceCollisionPropagates() {
	req := s.saleRequest()

	s.mockClientRepo.On("FindClientByID", s.ctx, "client-1").Return(s.client(), nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.AnythingOfType("[]string")).Return(s.catalog(), nil).Once()
	s.mockTxnRepo.On("MaxSequenceNumber", s.ctx, domain.Sale).Return(int64(41), nil).Once()
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(apperrors.ErrDuplicateSequence).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, domain.Sale, req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicateSequence)
}

// --- RegisterPayment ---

func (s *TransactionServiceTestSuite) pendingSale() *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   "txn-1",
		Type:            domain.Sale,
		Total:           decimal.NewFromInt(100),
		TotalPaid:       decimal.Zero,
		RemainingAmount: decimal.NewFromInt(100),
		Status:          domain.Pending,
	}
}

func (s *TransactionServiceTestSuite) TestRegisterPayment_Success() {
	req := dto.RegisterPaymentRequest{
		Amount:      decimal.NewFromInt(40),
		PaymentDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	}
	updated := s.pendingSale()
	updated.TotalPaid = decimal.NewFromInt(40)
	updated.RemainingAmount = decimal.NewFromInt(60)
	updated.Status = domain.PartiallyPaid

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(s.pendingSale(), nil).Once()
	s.mockTxnRepo.On("AddPayment", s.ctx, "txn-1", mock.AnythingOfType("domain.PaymentRecord"), "", s.userID, mock.AnythingOfType("time.Time")).Return(updated, nil).Once()

	result, err := s.service.RegisterPayment(s.ctx, domain.Sale, "txn-1", req, s.userID)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.PartiallyPaid, result.Status)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestRegisterPayment_WrongTypeHiddenAsNotFound() {
	req := dto.RegisterPaymentRequest{
		Amount:      decimal.NewFromInt(40),
		PaymentDate: time.Now(),
	}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(s.pendingSale(), nil).Once()

	_, err := s.service.RegisterPayment(s.ctx, domain.Purchase, "txn-1", req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockTxnRepo.AssertNotCalled(s.T(), "AddPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRegisterPayment_ExcessMappedToTaxonomy() {
	req := dto.RegisterPaymentRequest{
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Now(),
	}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(s.pendingSale(), nil).Once()
	s.mockTxnRepo.On("AddPayment", s.ctx, "txn-1", mock.AnythingOfType("domain.PaymentRecord"), "", s.userID, mock.AnythingOfType("time.Time")).Return(nil, domain.ErrExcessPayment).Once()

	_, err := s.service.RegisterPayment(s.ctx, domain.Sale, "txn-1", req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrExcessPayment)
}

func (s *TransactionServiceTestSuite) TestRegisterPayment_AlreadySettledMappedToTaxonomy() {
	req := dto.RegisterPaymentRequest{
		Amount:      decimal.NewFromInt(1),
		PaymentDate: time.Now(),
	}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(s.pendingSale(), nil).Once()
	s.mockTxnRepo.On("AddPayment", s.ctx, "txn-1", mock.AnythingOfType("domain.PaymentRecord"), "", s.userID, mock.AnythingOfType("time.Time")).Return(nil, domain.ErrAlreadySettled).Once()

	_, err := s.service.RegisterPayment(s.ctx, domain.Sale, "txn-1", req, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrAlreadySettled)
}

// --- CancelTransaction ---

func (s *TransactionServiceTestSuite) TestCancelTransaction_ReversesSaleStock() {
	txn := s.pendingSale()
	txn.Items = []domain.LineItem{
		{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
	}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	s.mockTxnRepo.On("DeleteTransaction", s.ctx, "txn-1", map[string]int64{"p1": 3}).Return(nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, []string{"p1"}).Return(s.catalog(), nil).Once()

	affected, err := s.service.CancelTransaction(s.ctx, domain.Sale, "txn-1", s.userID)

	require.NoError(s.T(), err)
	assert.Len(s.T(), affected, 1)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCancelTransaction_ReversesPurchaseStock() {
	txn := s.pendingSale()
	txn.Type = domain.Purchase
	txn.Items = []domain.LineItem{
		{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromInt(4)},
	}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	s.mockTxnRepo.On("DeleteTransaction", s.ctx, "txn-1", map[string]int64{"p1": -5}).Return(nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, []string{"p1"}).Return(s.catalog(), nil).Once()

	_, err := s.service.CancelTransaction(s.ctx, domain.Purchase, "txn-1", s.userID)

	require.NoError(s.T(), err)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCancelTransaction_SkipsLinesNeverApplied() {
	txn := s.pendingSale()
	txn.Items = []domain.LineItem{
		{ProductID: "p1", ProductName: "WIDGET", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		{ProductID: "ghost", ProductName: domain.UnknownProductName, Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
	}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	// Only the line applied at creation is reversed, even if a product with
	// the placeholder line's ID exists by now.
	s.mockTxnRepo.On("DeleteTransaction", s.ctx, "txn-1", map[string]int64{"p1": 3}).Return(nil).Once()
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, []string{"p1"}).Return(s.catalog(), nil).Once()

	affected, err := s.service.CancelTransaction(s.ctx, domain.Sale, "txn-1", s.userID)

	require.NoError(s.T(), err)
	assert.Len(s.T(), affected, 1)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCancelTransaction_WrongTypeHiddenAsNotFound() {
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(s.pendingSale(), nil).Once()

	_, err := s.service.CancelTransaction(s.ctx, domain.Purchase, "txn-1", s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockTxnRepo.AssertNotCalled(s.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// --- Listing and sequence preview ---

func (s *TransactionServiceTestSuite) TestListTransactions_StatusFilterPassedThrough() {
	status := "PAID"
	params := dto.ListTransactionsParams{Limit: 10, Offset: 0, Status: &status}

	s.mockTxnRepo.On("ListTransactions", s.ctx, domain.Sale, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Status != nil && *f.Status == domain.Paid && f.Limit == 10
	})).Return([]domain.Transaction{}, nil).Once()

	res, err := s.service.ListTransactions(s.ctx, domain.Sale, params)

	require.NoError(s.T(), err)
	assert.Empty(s.T(), res.Transactions)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestNextSequenceNumber() {
	s.mockTxnRepo.On("MaxSequenceNumber", s.ctx, domain.Purchase).Return(int64(17), nil).Once()

	next, err := s.service.NextSequenceNumber(s.ctx, domain.Purchase)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(18), next)
}

func (s *TransactionServiceTestSuite) TestNextSequenceNumber_InvalidType() {
	_, err := s.service.NextSequenceNumber(s.ctx, "REFUND")
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}
