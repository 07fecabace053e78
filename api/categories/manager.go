package categories

import (
	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/services"
	"github.com/go-chi/chi/v5"
)

type CategoryRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewCategoryRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/categories", crm.HandleListCategories)
}
