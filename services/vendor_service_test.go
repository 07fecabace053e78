package services

import (
	"strings"
	"testing"

	"github.com/careerbuilder24/e-commerce-project/structs"
)

func TestFilterVendorUpdates(t *testing.T) {
	storeName := "Bloom & Branch"
	city := "Utrecht"
	active := false

	updates := filterVendorUpdates(&structs.UpdateVendorRequest{
		StoreName: &storeName,
		City:      &city,
		IsActive:  &active,
	})

	if len(updates) != 3 {
		t.Fatalf("updates has %d entries, want 3", len(updates))
	}
	if updates["store_name"] != storeName {
		t.Errorf("store_name = %v", updates["store_name"])
	}
	if updates["city"] != city {
		t.Errorf("city = %v", updates["city"])
	}
	if updates["is_active"] != false {
		t.Errorf("is_active = %v", updates["is_active"])
	}
}

func TestFilterVendorUpdatesEmpty(t *testing.T) {
	updates := filterVendorUpdates(&structs.UpdateVendorRequest{})
	if len(updates) != 0 {
		t.Errorf("empty request produced updates: %v", updates)
	}
}

func TestVendorStatsCountOrderItemRows(t *testing.T) {
	// An order holding three of the vendor's items counts as three, for
	// both the total and the pending aggregate.
	for name, query := range map[string]string{
		"total":   vendorOrderCountQuery,
		"pending": vendorPendingCountQuery,
	} {
		if !strings.Contains(query, "count(*)") {
			t.Errorf("%s aggregate does not count rows: %s", name, query)
		}
		if strings.Contains(query, "DISTINCT") {
			t.Errorf("%s aggregate collapses items into orders: %s", name, query)
		}
		if !strings.Contains(query, "order_items") {
			t.Errorf("%s aggregate does not read order_items: %s", name, query)
		}
	}
}

func TestVendorStatsRevenueStatuses(t *testing.T) {
	for _, status := range []string{"'paid'", "'shipped'", "'delivered'"} {
		if !strings.Contains(vendorRevenueQuery, status) {
			t.Errorf("revenue query missing status %s", status)
		}
	}
	if strings.Contains(vendorRevenueQuery, "'pending'") {
		t.Error("pending orders must not count toward revenue")
	}
}

func TestFilterVendorUpdatesNeverTouchesProtectedColumns(t *testing.T) {
	storeName := "Attempted Takeover"
	updates := filterVendorUpdates(&structs.UpdateVendorRequest{StoreName: &storeName})

	for _, col := range []string{"user_id", "commission_rate", "created_at", "updated_at"} {
		if _, ok := updates[col]; ok {
			t.Errorf("%s must never come from the request", col)
		}
	}
}
