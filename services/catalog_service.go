package services

import (
	"context"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/database"
	"github.com/careerbuilder24/e-commerce-project/lib"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CatalogService serves the public storefront: active products across all
// vendors and the category tree. Reads only.
type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// Products lists active products with their vendor name, category name and
// primary image resolved.
func (cs *CatalogService) Products(ctx context.Context, opts *structs.StorefrontOptions) ([]tables.Product, error) {
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

	q := database.Query[tables.Product](cs.db).
		ColumnExpr("p.*").
		ColumnExpr("v.store_name AS vendor_name").
		ColumnExpr("c.name AS category_name").
		ColumnExpr("pi.image_url AS primary_image").
		Join("JOIN vendors AS v ON v.id = p.vendor_id AND v.is_active").
		Join("LEFT JOIN categories AS c ON c.id = p.category_id").
		Join("LEFT JOIN product_images AS pi ON pi.product_id = p.id AND pi.is_primary").
		Where("p.is_active", true).
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
	if opts.VendorID != nil {
		q = q.Where("p.vendor_id", *opts.VendorID)
	}
	if opts.IsFeatured != nil {
		q = q.Where("p.is_featured", *opts.IsFeatured)
	}

	products, err := q.All(ctx)
	if err != nil {
		cs.logger.Error("Failed to list storefront products", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}
	if products == nil {
		products = []tables.Product{}
	}

	return products, nil
}

// ProductByID fetches one active product with its images and active
// variants, or nil when it does not exist or is inactive.
func (cs *CatalogService) ProductByID(ctx context.Context, productID uuid.UUID) (*tables.Product, error) {
	cached, err := cs.cacheService.GetProductFromCache(productID)
	if err != nil {
		cs.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("product_id", productID))
	} else if cached != nil {
		return cached, nil
	}

	product, err := database.Query[tables.Product](cs.db).
		ColumnExpr("p.*").
		ColumnExpr("v.store_name AS vendor_name").
		ColumnExpr("c.name AS category_name").
		Join("JOIN vendors AS v ON v.id = p.vendor_id").
		Join("LEFT JOIN categories AS c ON c.id = p.category_id").
		Where("p.id", productID).
		Where("p.is_active", true).
		Relation("Images", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sort_order ASC")
		}).
		Relation("Variants", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("is_active = TRUE").Order("name ASC")
		}).
		First(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch storefront product", gecho.Field("error", err), gecho.Field("product_id", productID))
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, nil
	}

	go func() {
		if err := cs.cacheService.SetProductInCache(product); err != nil {
			cs.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("product_id", productID))
		}
	}()

	return product, nil
}

// Categories returns the active categories ordered for navigation menus.
func (cs *CatalogService) Categories(ctx context.Context) ([]tables.Category, error) {
	cached, err := cs.cacheService.GetCategoriesFromCache()
	if err != nil {
		cs.logger.Warn("Failed to get categories from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	categories, err := database.Query[tables.Category](cs.db).
		Where("is_active", true).
		OrderBy("sort_order", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to list categories", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}
	if categories == nil {
		categories = []tables.Category{}
	}

	go func() {
		if err := cs.cacheService.SetCategoriesInCache(categories); err != nil {
			cs.logger.Warn("Failed to cache categories", gecho.Field("error", err))
		}
	}()

	return categories, nil
}

// CategoryTree returns the active categories as a parent-child tree, built
// in memory from the flat ordered list.
func (cs *CatalogService) CategoryTree(ctx context.Context) ([]*tables.CategoryNode, error) {
	categories, err := cs.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return buildCategoryTree(categories), nil
}

// buildCategoryTree links flat categories into a tree. Input order is
// preserved among siblings; a child whose parent is missing (inactive or
// deleted) becomes a root.
func buildCategoryTree(categories []tables.Category) []*tables.CategoryNode {
	nodes := make(map[uuid.UUID]*tables.CategoryNode, len(categories))
	for i := range categories {
		nodes[categories[i].ID] = &tables.CategoryNode{
			Category: categories[i],
			Children: []*tables.CategoryNode{},
		}
	}

	roots := []*tables.CategoryNode{}
	for i := range categories {
		node := nodes[categories[i].ID]
		if categories[i].ParentID != nil {
			if parent, ok := nodes[*categories[i].ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}
