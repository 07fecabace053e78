package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/api/middleware"
)

// HandleMe returns the session user. RequireUser guarantees one is present.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
