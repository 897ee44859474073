package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
	"github.com/gestcom/gestcom_backend/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) CreateTransaction(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, []domain.Product, error) {
	args := m.Called(ctx, txnType, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).([]domain.Product), args.Error(2)
}

func (m *MockTransactionService) RegisterPayment(ctx context.Context, txnType domain.TransactionType, transactionID string, req dto.RegisterPaymentRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, txnType, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CancelTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string, userID string) ([]domain.Product, error) {
	args := m.Called(ctx, txnType, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, txnType domain.TransactionType, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, txnType, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, txnType domain.TransactionType, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, txnType, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) NextSequenceNumber(ctx context.Context, txnType domain.TransactionType) (int64, error) {
	args := m.Called(ctx, txnType)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
	userID      string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gestcom-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	registerTransactionRoutes(v1, "/sales", domain.Sale, suite.mockService)
	registerTransactionRoutes(v1, "/purchases", domain.Purchase, suite.mockService)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) createRequestBody() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		CounterpartyID: "client-1",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateLineItemRequest{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		},
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateSale_Success() {
	txn := &domain.Transaction{
		TransactionID:   "txn-1",
		Type:            domain.Sale,
		SequenceNumber:  42,
		Total:           decimal.NewFromInt(30),
		RemainingAmount: decimal.NewFromInt(30),
		Status:          domain.Pending,
	}
	affected := []domain.Product{{ProductID: "p1", Name: "WIDGET", Stock: 7}}

	suite.mockService.On("CreateTransaction", mock.Anything, domain.Sale, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.userID).
		Return(txn, affected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", suite.createRequestBody())

	suite.Equal(http.StatusCreated, w.Code)

	var res dto.CreateTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("txn-1", res.Transaction.TransactionID)
	suite.Equal(int64(42), res.Transaction.SequenceNumber)
	suite.Require().Len(res.AffectedProducts, 1)
	suite.Equal(int64(7), res.AffectedProducts[0].Stock)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateSale_InsufficientStock() {
	suite.mockService.On("CreateTransaction", mock.Anything, domain.Sale, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.userID).
		Return(nil, nil, apperrors.ErrInsufficientStock).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", suite.createRequestBody())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateSale_SequenceConflict() {
	suite.mockService.On("CreateTransaction", mock.Anything, domain.Sale, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.userID).
		Return(nil, nil, apperrors.ErrDuplicateSequence).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", suite.createRequestBody())

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateSale_MissingItemsRejectedAtBinding() {
	body := dto.CreateTransactionRequest{
		CounterpartyID: "client-1",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/sales", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetPurchase_TypeScopedNotFound() {
	// A sale requested through the purchases route is hidden by the service.
	suite.mockService.On("GetTransactionByID", mock.Anything, domain.Purchase, "txn-1").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/purchases/txn-1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestRegisterPayment_ExcessRejected() {
	body := dto.RegisterPaymentRequest{
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockService.On("RegisterPayment", mock.Anything, domain.Sale, "txn-1", mock.AnythingOfType("dto.RegisterPaymentRequest"), suite.userID).
		Return(nil, apperrors.ErrExcessPayment).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales/txn-1/payments", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestRegisterPayment_Success() {
	body := dto.RegisterPaymentRequest{
		Amount:      decimal.NewFromInt(40),
		PaymentDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	}
	updated := &domain.Transaction{
		TransactionID:   "txn-1",
		Type:            domain.Sale,
		Total:           decimal.NewFromInt(100),
		TotalPaid:       decimal.NewFromInt(40),
		RemainingAmount: decimal.NewFromInt(60),
		Status:          domain.PartiallyPaid,
	}

	suite.mockService.On("RegisterPayment", mock.Anything, domain.Sale, "txn-1", mock.AnythingOfType("dto.RegisterPaymentRequest"), suite.userID).
		Return(updated, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/sales/txn-1/payments", body)

	suite.Equal(http.StatusOK, w.Code)

	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.PartiallyPaid, res.Status)
}

func (suite *TransactionHandlerTestSuite) TestCancelSale_Success() {
	affected := []domain.Product{{ProductID: "p1", Name: "WIDGET", Stock: 10}}

	suite.mockService.On("CancelTransaction", mock.Anything, domain.Sale, "txn-1", suite.userID).
		Return(affected, nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/sales/txn-1", nil)

	suite.Equal(http.StatusOK, w.Code)

	var res dto.CancelTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.AffectedProducts, 1)
	suite.Equal(int64(10), res.AffectedProducts[0].Stock)
}

func (suite *TransactionHandlerTestSuite) TestNextSequence() {
	suite.mockService.On("NextSequenceNumber", mock.Anything, domain.Purchase).
		Return(int64(18), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/purchases/next-sequence", nil)

	suite.Equal(http.StatusOK, w.Code)

	var res dto.NextSequenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.Purchase, res.Type)
	suite.Equal(int64(18), res.NextSequenceNumber)
}

func (suite *TransactionHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}
