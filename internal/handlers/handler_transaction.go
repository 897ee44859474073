package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
	"github.com/gestcom/gestcom_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for one transaction type. The
// same handler serves /sales and /purchases; the route group fixes txnType.
type transactionHandler struct {
	txnType    domain.TransactionType
	txnService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(txnType domain.TransactionType, ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		txnType:    txnType,
		txnService: ts,
	}
}

// registerTransactionRoutes registers the document routes for one type under the given prefix.
func registerTransactionRoutes(rg *gin.RouterGroup, prefix string, txnType domain.TransactionType, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnType, txnService)

	txns := rg.Group(prefix)
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/next-sequence", h.nextSequence)
		txns.GET("/:id", h.getTransaction)
		txns.DELETE("/:id", h.cancelTransaction)
		txns.POST("/:id/payments", h.registerPayment)
	}
}

// createTransaction godoc
// @Summary Create a sale or purchase
// @Description Creates a new document with its line items, allocates the next sequence number and applies the stock effect atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Sequence number collision, retry"
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, affected, err := h.txnService.CreateTransaction(c.Request.Context(), h.txnType, req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction:      dto.ToTransactionResponse(txn),
		AffectedProducts: dto.ToProductStockResponses(affected),
	})
}

// listTransactions godoc
// @Summary List sales or purchases
// @Description Lists documents of one type, newest sequence first, with optional status and date filters.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Param status query string false "Payment status filter" Enums(PENDING, PARTIALLY_PAID, PAID)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.txnService.ListTransactions(c.Request.Context(), h.txnType, params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// getTransaction godoc
// @Summary Get a sale or purchase
// @Description Retrieves one document with its items and payments.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), h.txnType, transactionID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// cancelTransaction godoc
// @Summary Cancel a sale or purchase
// @Description Deletes the document and reverses its stock effect atomically.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.CancelTransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	affected, err := h.txnService.CancelTransaction(c.Request.Context(), h.txnType, transactionID, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Transaction cancelled", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.CancelTransactionResponse{
		AffectedProducts: dto.ToProductStockResponses(affected),
	})
}

// registerPayment godoc
// @Summary Register a payment
// @Description Applies a payment to a document and returns the updated document with its derived status.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param payment body dto.RegisterPaymentRequest true "Payment details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Excess payment or already settled"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/payments [post]
func (h *transactionHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.txnService.RegisterPayment(c.Request.Context(), h.txnType, transactionID, req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// nextSequence godoc
// @Summary Preview the next sequence number
// @Description Returns the number the next document of this type would take.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.NextSequenceResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/next-sequence [get]
func (h *transactionHandler) nextSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	next, err := h.txnService.NextSequenceNumber(c.Request.Context(), h.txnType)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NextSequenceResponse{
		Type:               h.txnType,
		NextSequenceNumber: next,
	})
}
