package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Orders exist in this service only as the source tables for the vendor
// dashboard aggregates; there is no order workflow here.
type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID    *uuid.UUID `bun:"user_id,type:uuid" json:"user_id,omitempty"`
	Status    string    `bun:"status,notnull" json:"status"` // pending, paid, shipped, ...
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type OrderItem struct {
	tableName  struct{}        `bun:"table:order_items,alias:oi"`
	ID         uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderID    uuid.UUID       `bun:"order_id,type:uuid,notnull" json:"order_id"`
	VendorID   uuid.UUID       `bun:"vendor_id,type:uuid,notnull" json:"vendor_id"`
	ProductID  *uuid.UUID      `bun:"product_id,type:uuid" json:"product_id,omitempty"`
	Quantity   int             `bun:"quantity,notnull" json:"quantity"`
	UnitPrice  decimal.Decimal `bun:"unit_price,notnull" json:"unit_price"`
	TotalPrice decimal.Decimal `bun:"total_price,notnull" json:"total_price"`
	CreatedAt  time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
}
