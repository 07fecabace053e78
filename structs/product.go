package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,min=2,max=255"`
	Description       string           `json:"description,omitempty" validate:"max=10000"`
	ShortDescription  string           `json:"short_description,omitempty" validate:"max=500"`
	CategoryID        *uuid.UUID       `json:"category_id,omitempty"`
	Price             decimal.Decimal  `json:"price" validate:"required"`
	ComparePrice      *decimal.Decimal `json:"compare_price,omitempty"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
	SKU               string           `json:"sku,omitempty" validate:"max=100"`
	TrackInventory    *bool            `json:"track_inventory,omitempty"`
	InventoryQuantity *int             `json:"inventory_quantity,omitempty" validate:"omitempty,gte=0"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty" validate:"omitempty,gte=0"`
	Weight            *decimal.Decimal `json:"weight,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
	IsFeatured        *bool            `json:"is_featured,omitempty"`
	MetaTitle         string           `json:"meta_title,omitempty" validate:"max=255"`
	MetaDescription   string           `json:"meta_description,omitempty" validate:"max=500"`
}

// UpdateProductRequest carries the partial-update fields for a product. As
// with vendors, the enumerated pointer fields are the update allow-list;
// vendor_id, slug and timestamps can never be set by a caller.
type UpdateProductRequest struct {
	Name              *string          `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description       *string          `json:"description,omitempty" validate:"omitempty,max=10000"`
	ShortDescription  *string          `json:"short_description,omitempty" validate:"omitempty,max=500"`
	CategoryID        *uuid.UUID       `json:"category_id,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	ComparePrice      *decimal.Decimal `json:"compare_price,omitempty"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
	SKU               *string          `json:"sku,omitempty" validate:"omitempty,max=100"`
	TrackInventory    *bool            `json:"track_inventory,omitempty"`
	InventoryQuantity *int             `json:"inventory_quantity,omitempty" validate:"omitempty,gte=0"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty" validate:"omitempty,gte=0"`
	Weight            *decimal.Decimal `json:"weight,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
	IsFeatured        *bool            `json:"is_featured,omitempty"`
	MetaTitle         *string          `json:"meta_title,omitempty" validate:"omitempty,max=255"`
	MetaDescription   *string          `json:"meta_description,omitempty" validate:"omitempty,max=500"`
}

type AddProductImageRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	AltText   string `json:"alt_text,omitempty" validate:"max=255"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// VendorProductOptions filters the vendor dashboard product listing.
type VendorProductOptions struct {
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	Search     string     `json:"search,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

// StorefrontOptions filters the public product listing.
type StorefrontOptions struct {
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	Search     string     `json:"search,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	VendorID   *uuid.UUID `json:"vendor_id,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
	IsFeatured *bool      `json:"is_featured,omitempty"`
}
