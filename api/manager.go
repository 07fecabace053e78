package api

import (
	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/api/auth"
	"github.com/careerbuilder24/e-commerce-project/api/categories"
	"github.com/careerbuilder24/e-commerce-project/api/health"
	"github.com/careerbuilder24/e-commerce-project/api/middleware"
	"github.com/careerbuilder24/e-commerce-project/api/products"
	"github.com/careerbuilder24/e-commerce-project/api/vendor"
	"github.com/careerbuilder24/e-commerce-project/services"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes     *auth.AuthRoutesManager
	vendorRoutes   *vendor.VendorRoutesManager
	productRoutes  *products.ProductRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService, sm.CacheService, cfg, mw),
		vendorRoutes:   vendor.NewVendorRoutesManager(logger, sm.VendorService, sm.ProductService, mw),
		productRoutes:  products.NewProductRoutesManager(logger, sm.CatalogService),
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CatalogService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.vendorRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
