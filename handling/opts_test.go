package handling

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestParseVendorProductOptionsDefaults(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/vendor/products", nil)

	opts, err := ParseVendorProductOptions(r)
	if err != nil {
		t.Fatalf("ParseVendorProductOptions: %v", err)
	}

	if opts.Limit != 0 || opts.Offset != 0 {
		t.Errorf("defaults: limit=%d offset=%d, want zeroes (service applies paging defaults)", opts.Limit, opts.Offset)
	}
	if opts.Search != "" || opts.CategoryID != nil || opts.IsActive != nil {
		t.Error("filters should be unset by default")
	}
}

func TestParseVendorProductOptions(t *testing.T) {
	categoryID := uuid.New()
	r, _ := http.NewRequest(http.MethodGet,
		"/vendor/products?limit=50&offset=10&search=shirt&category_id="+categoryID.String()+"&is_active=true", nil)

	opts, err := ParseVendorProductOptions(r)
	if err != nil {
		t.Fatalf("ParseVendorProductOptions: %v", err)
	}

	if opts.Limit != 50 {
		t.Errorf("limit = %d", opts.Limit)
	}
	if opts.Offset != 10 {
		t.Errorf("offset = %d", opts.Offset)
	}
	if opts.Search != "shirt" {
		t.Errorf("search = %q", opts.Search)
	}
	if opts.CategoryID == nil || *opts.CategoryID != categoryID {
		t.Error("category_id not parsed")
	}
	if opts.IsActive == nil || !*opts.IsActive {
		t.Error("is_active not parsed")
	}
}

func TestParseVendorProductOptionsInvalid(t *testing.T) {
	for _, query := range []string{
		"?limit=abc",
		"?offset=xyz",
		"?category_id=not-a-uuid",
		"?is_active=maybe",
	} {
		r, _ := http.NewRequest(http.MethodGet, "/vendor/products"+query, nil)
		if _, err := ParseVendorProductOptions(r); err == nil {
			t.Errorf("expected error for %q", query)
		}
	}
}

func TestParseStorefrontOptions(t *testing.T) {
	vendorID := uuid.New()
	r, _ := http.NewRequest(http.MethodGet,
		"/products?vendor_id="+vendorID.String()+"&featured=true&search=vase", nil)

	opts, err := ParseStorefrontOptions(r)
	if err != nil {
		t.Fatalf("ParseStorefrontOptions: %v", err)
	}

	if opts.VendorID == nil || *opts.VendorID != vendorID {
		t.Error("vendor_id not parsed")
	}
	if opts.IsFeatured == nil || !*opts.IsFeatured {
		t.Error("featured not parsed")
	}
	if opts.Search != "vase" {
		t.Errorf("search = %q", opts.Search)
	}
}
