package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a vendor-owned catalog entry. The slug is derived from the name
// and unique per vendor (schema constraint on (vendor_id, slug)).
type Product struct {
	tableName         struct{}         `bun:"table:products,alias:p"`
	ID                uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	VendorID          uuid.UUID        `bun:"vendor_id,type:uuid,notnull" json:"vendor_id"`
	CategoryID        *uuid.UUID       `bun:"category_id,type:uuid" json:"category_id,omitempty"`
	Name              string           `bun:"name,notnull" json:"name"`
	Slug              string           `bun:"slug,notnull" json:"slug"`
	Description       string           `bun:"description" json:"description,omitempty"`
	ShortDescription  string           `bun:"short_description" json:"short_description,omitempty"`
	SKU               string           `bun:"sku" json:"sku,omitempty"`
	Price             decimal.Decimal  `bun:"price,notnull" json:"price"`
	ComparePrice      *decimal.Decimal `bun:"compare_price" json:"compare_price,omitempty"`
	CostPrice         *decimal.Decimal `bun:"cost_price" json:"cost_price,omitempty"`
	TrackInventory    bool             `bun:"track_inventory,notnull" json:"track_inventory"`
	InventoryQuantity int              `bun:"inventory_quantity,notnull" json:"inventory_quantity"`
	LowStockThreshold int              `bun:"low_stock_threshold,notnull" json:"low_stock_threshold"`
	Weight            *decimal.Decimal `bun:"weight" json:"weight,omitempty"`
	IsActive          bool             `bun:"is_active,notnull" json:"is_active"`
	IsFeatured        bool             `bun:"is_featured,notnull" json:"is_featured"`
	MetaTitle         string           `bun:"meta_title" json:"meta_title,omitempty"`
	MetaDescription   string           `bun:"meta_description" json:"meta_description,omitempty"`
	CreatedAt         time.Time        `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt         time.Time        `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	// Join columns filled by listing queries, never written back.
	VendorName   string `bun:"vendor_name,scanonly" json:"vendor_name,omitempty"`
	CategoryName string `bun:"category_name,scanonly" json:"category_name,omitempty"`
	PrimaryImage string `bun:"primary_image,scanonly" json:"primary_image,omitempty"`

	Images   []ProductImage   `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
	Variants []ProductVariant `bun:"rel:has-many,join:id=product_id" json:"variants,omitempty"`
}

// ProductImage belongs to a product. At most one image per product carries
// is_primary = true.
type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	ImageURL  string    `bun:"image_url,notnull" json:"image_url"`
	AltText   string    `bun:"alt_text" json:"alt_text,omitempty"`
	SortOrder int       `bun:"sort_order,notnull" json:"sort_order"`
	IsPrimary bool      `bun:"is_primary,notnull" json:"is_primary"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type ProductVariant struct {
	tableName         struct{}         `bun:"table:product_variants,alias:pv"`
	ID                uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID         uuid.UUID        `bun:"product_id,type:uuid,notnull" json:"product_id"`
	Name              string           `bun:"name,notnull" json:"name"`
	SKU               string           `bun:"sku" json:"sku,omitempty"`
	Price             *decimal.Decimal `bun:"price" json:"price,omitempty"`
	ComparePrice      *decimal.Decimal `bun:"compare_price" json:"compare_price,omitempty"`
	InventoryQuantity int              `bun:"inventory_quantity,notnull" json:"inventory_quantity"`
	Weight            *decimal.Decimal `bun:"weight" json:"weight,omitempty"`
	Option1Name       string           `bun:"option1_name" json:"option1_name,omitempty"`
	Option1Value      string           `bun:"option1_value" json:"option1_value,omitempty"`
	Option2Name       string           `bun:"option2_name" json:"option2_name,omitempty"`
	Option2Value      string           `bun:"option2_value" json:"option2_value,omitempty"`
	Option3Name       string           `bun:"option3_name" json:"option3_name,omitempty"`
	Option3Value      string           `bun:"option3_value" json:"option3_value,omitempty"`
	IsActive          bool             `bun:"is_active,notnull" json:"is_active"`
	CreatedAt         time.Time        `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt         time.Time        `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
