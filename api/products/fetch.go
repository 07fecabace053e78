package products

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/handling"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (prm *ProductRoutesManager) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseStorefrontOptions(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid query parameters"), gecho.Send())
		return
	}

	products, err := prm.catalogService.Products(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "failed to list products", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(products),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	product, err := prm.catalogService.ProductByID(r.Context(), productID)
	if err != nil {
		handling.HandleError(err, "failed to fetch product", prm.logger, w)
		return
	}
	if product == nil {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
