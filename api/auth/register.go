package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/lib"
	"github.com/careerbuilder24/e-commerce-project/structs"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.Register(r.Context(), body)
	if err != nil {
		// A taken email is a client error, everything else is ours.
		if lib.IsUniqueViolation(err) {
			gecho.BadRequest(w, gecho.WithMessage("An account with this email already exists"), gecho.Send())
			return
		}

		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	if err := arm.authService.IssueSessionToken(user, w); err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete registration. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
