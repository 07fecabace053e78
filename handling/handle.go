package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs the failure with caller context and writes the generic
// 500 envelope. Internal details never reach the response body.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.Send())
}
