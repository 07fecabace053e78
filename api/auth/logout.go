package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/lib"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	claims, err := arm.authService.RevokeSession(r)
	if err != nil {
		if err == lib.ErrInvalidToken {
			// Nothing to revoke; logging out twice is fine.
			lib.ClearSessionCookie(w)
			gecho.Success(w,
				gecho.WithMessage("Logged out"),
				gecho.Send(),
			)
			return
		}

		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to logout"),
			gecho.Send(),
		)
		return
	}

	arm.logger.Debug("Session revoked", gecho.Field("user_id", claims.Sub), gecho.Field("jti", claims.Jti))

	lib.ClearSessionCookie(w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
