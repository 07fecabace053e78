package services

import (
	"testing"

	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestBuildProductDefaults(t *testing.T) {
	vendor := &tables.Vendor{ID: uuid.New()}
	req := &structs.CreateProductRequest{
		Name:  "Handmade Ceramic Vase",
		Price: decimal.NewFromInt(45),
	}

	product := buildProduct(vendor, req)

	if product.VendorID != vendor.ID {
		t.Error("vendor not attached")
	}
	if product.Slug != "handmade-ceramic-vase" {
		t.Errorf("slug = %q", product.Slug)
	}
	if !product.TrackInventory {
		t.Error("inventory tracking should default on")
	}
	if product.InventoryQuantity != 0 {
		t.Errorf("inventory quantity = %d, want 0", product.InventoryQuantity)
	}
	if product.LowStockThreshold != 5 {
		t.Errorf("low stock threshold = %d, want 5", product.LowStockThreshold)
	}
	if !product.IsActive {
		t.Error("products should default active")
	}
	if product.IsFeatured {
		t.Error("products should not default featured")
	}
}

func TestBuildProductOverrides(t *testing.T) {
	vendor := &tables.Vendor{ID: uuid.New()}
	track := false
	qty := 12
	threshold := 2
	active := false
	featured := true
	req := &structs.CreateProductRequest{
		Name:              "Limited Print",
		Price:             decimal.NewFromInt(120),
		TrackInventory:    &track,
		InventoryQuantity: &qty,
		LowStockThreshold: &threshold,
		IsActive:          &active,
		IsFeatured:        &featured,
	}

	product := buildProduct(vendor, req)

	if product.TrackInventory {
		t.Error("track_inventory override ignored")
	}
	if product.InventoryQuantity != 12 {
		t.Errorf("inventory quantity = %d", product.InventoryQuantity)
	}
	if product.LowStockThreshold != 2 {
		t.Errorf("low stock threshold = %d", product.LowStockThreshold)
	}
	if product.IsActive {
		t.Error("is_active override ignored")
	}
	if !product.IsFeatured {
		t.Error("is_featured override ignored")
	}
}

func TestFilterProductUpdates(t *testing.T) {
	name := "Renamed Product"
	price := decimal.NewFromInt(99)
	active := false

	updates := filterProductUpdates(&structs.UpdateProductRequest{
		Name:     &name,
		Price:    &price,
		IsActive: &active,
	})

	if len(updates) != 3 {
		t.Fatalf("updates has %d entries, want 3", len(updates))
	}
	if updates["name"] != name {
		t.Errorf("name = %v", updates["name"])
	}
	if updates["is_active"] != false {
		t.Errorf("is_active = %v", updates["is_active"])
	}
	for _, col := range []string{"vendor_id", "slug", "created_at", "updated_at"} {
		if _, ok := updates[col]; ok {
			t.Errorf("%s must never come from the request", col)
		}
	}
}

func TestFilterProductUpdatesEmpty(t *testing.T) {
	updates := filterProductUpdates(&structs.UpdateProductRequest{})
	if len(updates) != 0 {
		t.Errorf("empty request produced updates: %v", updates)
	}
}
