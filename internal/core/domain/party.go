package domain

// Client is a customer of the business; sales reference a client.
type Client struct {
	ClientID     string `json:"clientID"`
	Name         string `json:"name"`
	TaxID        string `json:"taxID"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
	AuditFields
}

// Supplier provides goods to the business; purchases reference a supplier.
type Supplier struct {
	SupplierID   string `json:"supplierID"`
	Name         string `json:"name"`
	TaxID        string `json:"taxID"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
	AuditFields
}
