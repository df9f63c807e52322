package models

import "time"

// Product statuses as stored by the backend.
const (
	StatusInField         = "In field"
	StatusWarehouse       = "Warehouse"
	StatusPendingDelivery = "Pending delivery"
	StatusLoaned          = "Loaned"
	StatusInRepair        = "In repair"
	StatusObsolete        = "Obsolete"
)

// ProductStatuses lists every status in the order the UI presents them.
var ProductStatuses = []string{
	StatusInField,
	StatusWarehouse,
	StatusPendingDelivery,
	StatusLoaned,
	StatusInRepair,
	StatusObsolete,
}

// ProductCategories feeds the category dropdown on the product forms.
var ProductCategories = []string{
	"Computers",
	"Monitors",
	"Printers",
	"Networking",
	"Telephony",
	"Storage",
	"Accessories",
	"Furniture",
	"Tools",
	"Other",
}

// Product mirrors the backend's product resource. The client holds a
// transient copy per page load and never persists it.
type Product struct {
	ID           int64   `json:"id"`
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Model        string  `json:"model,omitempty"`
	SerialNumber string  `json:"serialNumber,omitempty"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	Status       string  `json:"status"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Location     string  `json:"location,omitempty"`

	// Date-only fields, "2006-01-02" as entered on the form.
	PurchaseDate   string `json:"purchaseDate,omitempty"`
	WarrantyExpiry string `json:"warrantyExpiry,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Value is the product's total inventory value.
func (p Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}

// LastUser returns the most recent account that touched the product.
func (p Product) LastUser() string {
	if p.UpdatedBy != "" {
		return p.UpdatedBy
	}
	if p.CreatedBy != "" {
		return p.CreatedBy
	}
	return "unknown"
}
