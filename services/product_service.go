package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/database"
	"github.com/careerbuilder24/e-commerce-project/lib"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultLowStockThreshold = 5
	skuSuffixLength          = 6
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// buildProduct turns a create request into a product row with the catalog
// defaults filled in: inventory tracking on, zero stock, low stock threshold
// of five, active and not featured.
func buildProduct(vendor *tables.Vendor, req *structs.CreateProductRequest) *tables.Product {
	product := &tables.Product{
		VendorID:          vendor.ID,
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Slug:              lib.Slugify(req.Name),
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		SKU:               req.SKU,
		Price:             req.Price,
		ComparePrice:      req.ComparePrice,
		CostPrice:         req.CostPrice,
		TrackInventory:    true,
		InventoryQuantity: 0,
		LowStockThreshold: defaultLowStockThreshold,
		Weight:            req.Weight,
		IsActive:          true,
		IsFeatured:        false,
		MetaTitle:         req.MetaTitle,
		MetaDescription:   req.MetaDescription,
	}

	if req.TrackInventory != nil {
		product.TrackInventory = *req.TrackInventory
	}
	if req.InventoryQuantity != nil {
		product.InventoryQuantity = *req.InventoryQuantity
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	return product
}

// CreateProduct inserts a product for the vendor. The slug existence check
// runs inside a transaction; the unique constraint on (vendor_id, slug)
// settles concurrent creates with the same name.
func (ps *ProductService) CreateProduct(ctx context.Context, vendor *tables.Vendor, req *structs.CreateProductRequest) (*tables.Product, error) {
	if vendor == nil {
		return nil, lib.ErrAuthRequired
	}

	product := buildProduct(vendor, req)

	if product.SKU == "" {
		sku, err := lib.GenerateSKU(product.Name, skuSuffixLength)
		if err != nil {
			return nil, err
		}
		product.SKU = sku
	}

	err := ps.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		taken, err := database.Query[tables.Product](ps.db).WithTx(tx).
			Where("vendor_id", vendor.ID).
			Where("slug", product.Slug).
			Exists(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if taken {
			return lib.ErrDuplicateSlug
		}

		_, err = database.Query[tables.Product](ps.db).WithTx(tx).Insert(ctx, product)
		return err
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			// Lost the race against a concurrent create with the same name.
			return nil, lib.ErrDuplicateSlug
		}
		if mappedErr == lib.ErrDuplicateSlug {
			return nil, mappedErr
		}
		ps.logger.Error("Failed to create product",
			gecho.Field("error", mappedErr),
			gecho.Field("vendor_id", vendor.ID),
			gecho.Field("slug", product.Slug),
		)
		return nil, mappedErr
	}

	ps.logger.Debug("Product created",
		gecho.Field("product_id", product.ID),
		gecho.Field("vendor_id", vendor.ID),
	)

	return product, nil
}

// VendorProducts lists the vendor's own products for the dashboard. A caller
// without a vendor account gets an empty list, not an error.
func (ps *ProductService) VendorProducts(ctx context.Context, vendor *tables.Vendor, opts *structs.VendorProductOptions) ([]tables.Product, error) {
	if vendor == nil {
		return []tables.Product{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	q := database.Query[tables.Product](ps.db).
		ColumnExpr("p.*").
		ColumnExpr("c.name AS category_name").
		ColumnExpr("pi.image_url AS primary_image").
		Join("LEFT JOIN categories AS c ON c.id = p.category_id").
		Join("LEFT JOIN product_images AS pi ON pi.product_id = p.id AND pi.is_primary").
		Where("p.vendor_id", vendor.ID).
		OrderBy("p.created_at", database.DESC).
		Limit(limit).
		Offset(offset)

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		q = q.WhereRaw("(p.name ILIKE ? OR p.description ILIKE ?)", pattern, pattern)
	}
	if opts.CategoryID != nil {
		q = q.Where("p.category_id", *opts.CategoryID)
	}
	if opts.IsActive != nil {
		q = q.Where("p.is_active", *opts.IsActive)
	}

	products, err := q.All(ctx)
	if err != nil {
		ps.logger.Error("Failed to list vendor products", gecho.Field("error", err), gecho.Field("vendor_id", vendor.ID))
		return nil, lib.MapPgError(err)
	}
	if products == nil {
		products = []tables.Product{}
	}

	return products, nil
}

// VendorProductByID fetches one product scoped to the vendor. A product that
// exists but belongs to someone else is indistinguishable from a missing one.
func (ps *ProductService) VendorProductByID(ctx context.Context, vendor *tables.Vendor, productID uuid.UUID) (*tables.Product, error) {
	if vendor == nil {
		return nil, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("id", productID).
		Where("vendor_id", vendor.ID).
		Relation("Images", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sort_order ASC")
		}).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch vendor product",
			gecho.Field("error", err),
			gecho.Field("product_id", productID),
			gecho.Field("vendor_id", vendor.ID),
		)
		return nil, lib.MapPgError(err)
	}

	return product, nil
}

// UpdateProduct applies a partial update to a product the vendor owns.
// Renaming the product regenerates its slug, which must stay unique within
// the store.
func (ps *ProductService) UpdateProduct(ctx context.Context, vendor *tables.Vendor, productID uuid.UUID, req *structs.UpdateProductRequest) (*tables.Product, error) {
	product, err := ps.VendorProductByID(ctx, vendor, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	updates := filterProductUpdates(req)

	if req.Name != nil && *req.Name != product.Name {
		slug := lib.Slugify(*req.Name)
		if slug != product.Slug {
			taken, err := database.Query[tables.Product](ps.db).
				Where("vendor_id", vendor.ID).
				Where("slug", slug).
				WhereOp("id", "!=", product.ID).
				Exists(ctx)
			if err != nil {
				return nil, lib.MapPgError(err)
			}
			if taken {
				return nil, lib.ErrDuplicateSlug
			}
			updates["slug"] = slug
		}
	}

	if len(updates) == 0 {
		return product, nil
	}
	updates["updated_at"] = time.Now()

	_, err = database.Query[tables.Product](ps.db).
		Where("id", product.ID).
		Where("vendor_id", vendor.ID).
		Update(ctx, updates)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			return nil, lib.ErrDuplicateSlug
		}
		ps.logger.Error("Failed to update product", gecho.Field("error", mappedErr), gecho.Field("product_id", product.ID))
		return nil, mappedErr
	}

	if err := ps.cacheService.InvalidateProduct(product.ID); err != nil {
		ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err), gecho.Field("product_id", product.ID))
	}

	return ps.VendorProductByID(ctx, vendor, productID)
}

// filterProductUpdates converts the request's set pointer fields into an
// update map. vendor_id, slug and timestamps are not in the request struct,
// so a caller can never touch them directly.
func filterProductUpdates(req *structs.UpdateProductRequest) map[string]any {
	updates := map[string]any{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ComparePrice != nil {
		updates["compare_price"] = *req.ComparePrice
	}
	if req.CostPrice != nil {
		updates["cost_price"] = *req.CostPrice
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.TrackInventory != nil {
		updates["track_inventory"] = *req.TrackInventory
	}
	if req.InventoryQuantity != nil {
		updates["inventory_quantity"] = *req.InventoryQuantity
	}
	if req.LowStockThreshold != nil {
		updates["low_stock_threshold"] = *req.LowStockThreshold
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.MetaTitle != nil {
		updates["meta_title"] = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		updates["meta_description"] = *req.MetaDescription
	}

	return updates
}

// DeleteProduct removes a product the vendor owns. Images and variants go
// with it through the FK cascades.
func (ps *ProductService) DeleteProduct(ctx context.Context, vendor *tables.Vendor, productID uuid.UUID) error {
	product, err := ps.VendorProductByID(ctx, vendor, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return lib.ErrNotFound
	}

	affected, err := database.Query[tables.Product](ps.db).
		Where("id", product.ID).
		Where("vendor_id", vendor.ID).
		Delete(ctx)
	if err != nil {
		ps.logger.Error("Failed to delete product", gecho.Field("error", err), gecho.Field("product_id", product.ID))
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	if err := ps.cacheService.InvalidateProduct(product.ID); err != nil {
		ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err), gecho.Field("product_id", product.ID))
	}

	ps.logger.Debug("Product deleted",
		gecho.Field("product_id", product.ID),
		gecho.Field("vendor_id", vendor.ID),
	)

	return nil
}

// AddProductImage attaches an image to a product the vendor owns. Marking the
// new image primary demotes any existing primary inside the same transaction.
func (ps *ProductService) AddProductImage(ctx context.Context, vendor *tables.Vendor, productID uuid.UUID, req *structs.AddProductImageRequest) (*tables.ProductImage, error) {
	product, err := ps.VendorProductByID(ctx, vendor, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	image := &tables.ProductImage{
		ProductID: product.ID,
		ImageURL:  req.ImageURL,
		AltText:   req.AltText,
		IsPrimary: req.IsPrimary,
	}

	err = ps.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if req.IsPrimary {
			_, err := database.Query[tables.ProductImage](ps.db).WithTx(tx).
				Where("product_id", product.ID).
				Update(ctx, map[string]any{"is_primary": false})
			if err != nil {
				return err
			}
		}

		if err := tx.NewRaw(
			"SELECT COALESCE(MAX(sort_order), 0) + 1 FROM product_images WHERE product_id = ?",
			product.ID,
		).Scan(ctx, &image.SortOrder); err != nil {
			return err
		}

		_, err := database.Query[tables.ProductImage](ps.db).WithTx(tx).Insert(ctx, image)
		return err
	})
	if err != nil {
		ps.logger.Error("Failed to add product image", gecho.Field("error", err), gecho.Field("product_id", product.ID))
		return nil, lib.MapPgError(err)
	}

	if err := ps.cacheService.InvalidateProduct(product.ID); err != nil {
		ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err), gecho.Field("product_id", product.ID))
	}

	return image, nil
}
