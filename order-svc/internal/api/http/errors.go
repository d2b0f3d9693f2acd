package httpapi

import (
	"errors"
	"log"
	"net/http"

	"pizzadesk/order-svc/internal/domain"
)

// writeError maps service errors onto status codes. Persistence failures
// are logged with their cause and answered with a generic body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("[%s] %s %s failed: %v", requestID(r), r.Method, r.URL.Path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
