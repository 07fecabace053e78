package products

import (
	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/services"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewProductRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.HandleListProducts)
		r.Get("/{id}", prm.HandleGetProduct)
	})
}
