package models

// Client represents a row of the clients table.
type Client struct {
	ClientID     string `json:"clientID" db:"client_id"`
	Name         string `json:"name" db:"name"`
	TaxID        string `json:"taxID" db:"tax_id"`
	Phone        string `json:"phone" db:"phone"`
	Email        string `json:"email" db:"email"`
	Address      string `json:"address" db:"address"`
	Observations string `json:"observations" db:"observations"`
	AuditFields
}

// Supplier represents a row of the suppliers table.
type Supplier struct {
	SupplierID   string `json:"supplierID" db:"supplier_id"`
	Name         string `json:"name" db:"name"`
	TaxID        string `json:"taxID" db:"tax_id"`
	Phone        string `json:"phone" db:"phone"`
	Email        string `json:"email" db:"email"`
	Address      string `json:"address" db:"address"`
	Observations string `json:"observations" db:"observations"`
	AuditFields
}
