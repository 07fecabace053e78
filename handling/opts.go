package handling

import (
	"net/http"
	"strconv"

	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/google/uuid"
)

// ParseVendorProductOptions parses HTTP query parameters into the vendor
// dashboard listing options. Limits are clamped later by the service.
func ParseVendorProductOptions(r *http.Request) (*structs.VendorProductOptions, error) {
	query := r.URL.Query()

	opts := &structs.VendorProductOptions{}

	if limit := query.Get("limit"); limit != "" {
		val, err := strconv.Atoi(limit)
		if err != nil {
			return nil, err
		}
		opts.Limit = val
	}

	if offset := query.Get("offset"); offset != "" {
		val, err := strconv.Atoi(offset)
		if err != nil {
			return nil, err
		}
		opts.Offset = val
	}

	if search := query.Get("search"); search != "" {
		opts.Search = search
	}

	if categoryID := query.Get("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, err
		}
		opts.CategoryID = &id
	}

	if isActive := query.Get("is_active"); isActive != "" {
		val, err := strconv.ParseBool(isActive)
		if err != nil {
			return nil, err
		}
		opts.IsActive = &val
	}

	return opts, nil
}

// ParseStorefrontOptions parses HTTP query parameters into the public
// product listing options.
func ParseStorefrontOptions(r *http.Request) (*structs.StorefrontOptions, error) {
	query := r.URL.Query()

	opts := &structs.StorefrontOptions{}

	if limit := query.Get("limit"); limit != "" {
		val, err := strconv.Atoi(limit)
		if err != nil {
			return nil, err
		}
		opts.Limit = val
	}

	if offset := query.Get("offset"); offset != "" {
		val, err := strconv.Atoi(offset)
		if err != nil {
			return nil, err
		}
		opts.Offset = val
	}

	if search := query.Get("search"); search != "" {
		opts.Search = search
	}

	if categoryID := query.Get("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, err
		}
		opts.CategoryID = &id
	}

	if vendorID := query.Get("vendor_id"); vendorID != "" {
		id, err := uuid.Parse(vendorID)
		if err != nil {
			return nil, err
		}
		opts.VendorID = &id
	}

	if featured := query.Get("featured"); featured != "" {
		val, err := strconv.ParseBool(featured)
		if err != nil {
			return nil, err
		}
		opts.IsFeatured = &val
	}

	return opts, nil
}
