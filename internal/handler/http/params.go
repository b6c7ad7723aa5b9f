package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID extracts a numeric id from the route pattern. A non-numeric value
// means the URL does not name an existing resource.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
