package dto

import (
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest defines one line of a sale or purchase document.
type CreateLineItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateTransactionRequest defines the data needed to create a sale or purchase.
// Total is optional; when present it is cross-checked against the server-side
// recomputation and a mismatch rejects the request.
type CreateTransactionRequest struct {
	CounterpartyID string                  `json:"counterpartyID" binding:"required"`
	Date           time.Time               `json:"date" binding:"required"`
	Items          []CreateLineItemRequest `json:"items" binding:"required,min=1,dive"`
	Total          *decimal.Decimal        `json:"total"`
	Observations   string                  `json:"observations"`
}

// RegisterPaymentRequest defines the data needed to apply a payment to a transaction.
type RegisterPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Bank        string          `json:"bank"`
}

// LineItemResponse defines the data returned for one transaction line.
type LineItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PaymentResponse defines the data returned for one payment record.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionResponse defines the data returned for a sale or purchase.
type TransactionResponse struct {
	TransactionID    string                 `json:"transactionID"`
	Type             domain.TransactionType `json:"type"`
	SequenceNumber   int64                  `json:"sequenceNumber"`
	CounterpartyID   string                 `json:"counterpartyID"`
	CounterpartyName string                 `json:"counterpartyName"`
	Date             time.Time              `json:"date"`
	Items            []LineItemResponse     `json:"items"`
	Total            decimal.Decimal        `json:"total"`
	TotalPaid        decimal.Decimal        `json:"totalPaid"`
	RemainingAmount  decimal.Decimal        `json:"remainingAmount"`
	Status           domain.PaymentStatus   `json:"status"`
	FirstPaymentDate *time.Time             `json:"firstPaymentDate,omitempty"`
	FinalPaymentDate *time.Time             `json:"finalPaymentDate,omitempty"`
	Bank             string                 `json:"bank,omitempty"`
	Observations     string                 `json:"observations,omitempty"`
	Payments         []PaymentResponse      `json:"payments"`
	CreatedAt        time.Time              `json:"createdAt"`
	CreatedBy        string                 `json:"createdBy"`
}

// ProductStockResponse is a post-update snapshot of a product touched by a
// transaction create or cancel.
type ProductStockResponse struct {
	ProductID string `json:"productID"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
}

// CreateTransactionResponse combines the created transaction with the
// snapshots of every product whose stock it changed.
type CreateTransactionResponse struct {
	Transaction      TransactionResponse    `json:"transaction"`
	AffectedProducts []ProductStockResponse `json:"affectedProducts"`
}

// CancelTransactionResponse carries the post-reversal product snapshots.
type CancelTransactionResponse struct {
	AffectedProducts []ProductStockResponse `json:"affectedProducts"`
}

// ListTransactionsParams defines query parameters for listing sales or purchases.
type ListTransactionsParams struct {
	Limit  int        `form:"limit,default=50"`
	Offset int        `form:"offset,default=0"`
	Status *string    `form:"status" binding:"omitempty,oneof=PENDING PARTIALLY_PAID PAID"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NextSequenceResponse returns the number the next document of a type would take.
type NextSequenceResponse struct {
	Type               domain.TransactionType `json:"type"`
	NextSequenceNumber int64                  `json:"nextSequenceNumber"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO
func ToLineItemResponse(item *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		ItemID:      item.ItemID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal(),
	}
}

// ToPaymentResponse converts a domain.PaymentRecord to PaymentResponse DTO
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		CreatedAt:   p.CreatedAt,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	items := make([]LineItemResponse, len(txn.Items))
	for i, item := range txn.Items {
		items[i] = ToLineItemResponse(&item)
	}
	payments := make([]PaymentResponse, len(txn.Payments))
	for i, p := range txn.Payments {
		payments[i] = ToPaymentResponse(&p)
	}
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		Type:             txn.Type,
		SequenceNumber:   txn.SequenceNumber,
		CounterpartyID:   txn.CounterpartyID,
		CounterpartyName: txn.CounterpartyName,
		Date:             txn.Date,
		Items:            items,
		Total:            txn.Total,
		TotalPaid:        txn.TotalPaid,
		RemainingAmount:  txn.RemainingAmount,
		Status:           txn.Status,
		FirstPaymentDate: txn.FirstPaymentDate,
		FinalPaymentDate: txn.FinalPaymentDate,
		Bank:             txn.Bank,
		Observations:     txn.Observations,
		Payments:         payments,
		CreatedAt:        txn.CreatedAt,
		CreatedBy:        txn.CreatedBy,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to ListTransactionsResponse DTO
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: res}
}

// ToProductStockResponses converts product snapshots to ProductStockResponse DTOs
func ToProductStockResponses(products []domain.Product) []ProductStockResponse {
	res := make([]ProductStockResponse, len(products))
	for i, p := range products {
		res[i] = ProductStockResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Stock:     p.Stock,
		}
	}
	return res
}
