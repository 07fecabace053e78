package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vendor is a marketplace seller account. The unique constraint on user_id
// enforces the one-vendor-per-user invariant at the schema level.
type Vendor struct {
	tableName        struct{}        `bun:"table:vendors,alias:v"`
	ID               uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID       `bun:"user_id,type:uuid,unique,notnull" json:"user_id"`
	StoreName        string          `bun:"store_name,notnull" json:"store_name"`
	StoreDescription string          `bun:"store_description" json:"store_description,omitempty"`
	StoreLogo        string          `bun:"store_logo" json:"store_logo,omitempty"`
	StoreBanner      string          `bun:"store_banner" json:"store_banner,omitempty"`
	ContactEmail     string          `bun:"contact_email" json:"contact_email,omitempty"`
	ContactPhone     string          `bun:"contact_phone" json:"contact_phone,omitempty"`
	Address          string          `bun:"address" json:"address,omitempty"`
	City             string          `bun:"city" json:"city,omitempty"`
	State            string          `bun:"state" json:"state,omitempty"`
	Country          string          `bun:"country" json:"country,omitempty"`
	PostalCode       string          `bun:"postal_code" json:"postal_code,omitempty"`
	IsActive         bool            `bun:"is_active,notnull" json:"is_active"`
	CommissionRate   decimal.Decimal `bun:"commission_rate,notnull" json:"commission_rate"`
	CreatedAt        time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt        time.Time       `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
