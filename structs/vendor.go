package structs

import "github.com/shopspring/decimal"

type CreateVendorRequest struct {
	StoreName        string `json:"store_name" validate:"required,min=2,max=255"`
	StoreDescription string `json:"store_description,omitempty" validate:"max=2000"`
	ContactEmail     string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone     string `json:"contact_phone,omitempty" validate:"max=50"`
	Address          string `json:"address,omitempty" validate:"max=255"`
	City             string `json:"city,omitempty" validate:"max=100"`
	State            string `json:"state,omitempty" validate:"max=100"`
	Country          string `json:"country,omitempty" validate:"max=100"`
	PostalCode       string `json:"postal_code,omitempty" validate:"max=20"`
}

// UpdateVendorRequest carries the partial-update fields for a vendor profile.
// The pointer fields double as the column allow-list: only fields named here
// can ever reach the UPDATE statement.
type UpdateVendorRequest struct {
	StoreName        *string `json:"store_name,omitempty" validate:"omitempty,min=2,max=255"`
	StoreDescription *string `json:"store_description,omitempty" validate:"omitempty,max=2000"`
	StoreLogo        *string `json:"store_logo,omitempty" validate:"omitempty,url"`
	StoreBanner      *string `json:"store_banner,omitempty" validate:"omitempty,url"`
	ContactEmail     *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone     *string `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
	Address          *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City             *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State            *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Country          *string `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode       *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

// VendorStats is the dashboard aggregate record. All counts are zero, never
// null, for a vendor without products or orders.
type VendorStats struct {
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingOrders int             `json:"pending_orders"`
}
