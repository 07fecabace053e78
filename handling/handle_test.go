package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
)

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	logger := gecho.NewDefaultLogger()

	HandleError(errors.New("connection refused"), "failed to list products", logger, rec)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error detail leaked into the response body")
	}
}
