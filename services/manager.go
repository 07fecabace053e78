package services

import (
	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/database"
	"github.com/careerbuilder24/e-commerce-project/structs"
)

type ServiceManager struct {
	AuthService    *AuthService
	CacheService   *CacheService
	CatalogService *CatalogService
	EmailService   *EmailService
	HealthService  *HealthService
	ProductService *ProductService
	VendorService  *VendorService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	emailService := NewEmailService(logger, cfg)
	catalogService := NewCatalogService(logger, db, cacheService)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	vendorService := NewVendorService(logger, db, authService, cacheService, emailService)

	return &ServiceManager{
		AuthService:    authService,
		CacheService:   cacheService,
		CatalogService: catalogService,
		EmailService:   emailService,
		HealthService:  healthService,
		ProductService: productService,
		VendorService:  vendorService,
	}
}
