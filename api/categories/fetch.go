package categories

import (
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/handling"
)

// HandleListCategories returns the active categories, flat by default or as
// a parent-child tree with ?tree=true.
func (crm *CategoryRoutesManager) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	asTree, _ := strconv.ParseBool(r.URL.Query().Get("tree"))

	if asTree {
		tree, err := crm.catalogService.CategoryTree(r.Context())
		if err != nil {
			handling.HandleError(err, "failed to build category tree", crm.logger, w)
			return
		}
		gecho.Success(w, gecho.WithData(tree), gecho.Send())
		return
	}

	categories, err := crm.catalogService.Categories(r.Context())
	if err != nil {
		handling.HandleError(err, "failed to list categories", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}
