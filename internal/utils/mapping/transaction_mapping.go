package mapping

import (
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction (header only) to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		Type:             models.TransactionType(d.Type),
		SequenceNumber:   d.SequenceNumber,
		CounterpartyID:   d.CounterpartyID,
		CounterpartyName: d.CounterpartyName,
		Date:             d.Date,
		Total:            d.Total,
		TotalPaid:        d.TotalPaid,
		RemainingAmount:  d.RemainingAmount,
		Status:           models.PaymentStatus(d.Status),
		FirstPaymentDate: d.FirstPaymentDate,
		FinalPaymentDate: d.FinalPaymentDate,
		Bank:             d.Bank,
		Observations:     d.Observations,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Items and Payments are attached separately by the repository.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:    m.TransactionID,
		Type:             domain.TransactionType(m.Type),
		SequenceNumber:   m.SequenceNumber,
		CounterpartyID:   m.CounterpartyID,
		CounterpartyName: m.CounterpartyName,
		Date:             m.Date,
		Total:            m.Total,
		TotalPaid:        m.TotalPaid,
		RemainingAmount:  m.RemainingAmount,
		Status:           domain.PaymentStatus(m.Status),
		FirstPaymentDate: m.FirstPaymentDate,
		FinalPaymentDate: m.FinalPaymentDate,
		Bank:             m.Bank,
		Observations:     m.Observations,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(transactionID string, d domain.LineItem) models.LineItem {
	return models.LineItem{
		ItemID:        d.ItemID,
		TransactionID: transactionID,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		ItemID:      m.ItemID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}

// ToModelPaymentRecord converts a domain PaymentRecord to a model PaymentRecord
func ToModelPaymentRecord(d domain.PaymentRecord) models.PaymentRecord {
	return models.PaymentRecord{
		PaymentID:     d.PaymentID,
		TransactionID: d.TransactionID,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainPaymentRecord converts a model PaymentRecord to a domain PaymentRecord
func ToDomainPaymentRecord(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:     m.PaymentID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainPaymentRecordSlice converts a slice of model PaymentRecords to domain PaymentRecords
func ToDomainPaymentRecordSlice(ms []models.PaymentRecord) []domain.PaymentRecord {
	ds := make([]domain.PaymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentRecord(m)
	}
	return ds
}
