package http

import (
	"errors"
	"net/http"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/service"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/models"
)

// detail is the body shape of every non-field error response.
type detail struct {
	Detail string `json:"detail"`
}

// Fixed detail messages, matching the phrasing the API's clients parse.
const (
	msgNotFound         = "Not found."
	msgInvalidPage      = "Invalid page."
	msgJSONParseError   = "JSON parse error."
	msgInvalidToken     = "Invalid token."
	msgWrongCredentials = "Unable to log in with provided credentials."
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrProjectNotFound: http.StatusNotFound,
	store.ErrSprintNotFound:  http.StatusNotFound,
	store.ErrMetricNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the API error contract: validation failures
// serialize as their field map with 400, everything else as a single
// {"detail": ...} object with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErrors models.FieldErrors
	if errors.As(err, &fieldErrors) {
		utils.WriteJSON(w, fieldErrors, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	switch status {
	case http.StatusNotFound:
		writeDetail(w, http.StatusNotFound, msgNotFound)
	case http.StatusUnauthorized:
		writeDetail(w, http.StatusUnauthorized, msgWrongCredentials)
	case http.StatusInternalServerError:
		log.Err(err).Msg("request ended with an unexpected error")
		writeDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	default:
		writeDetail(w, status, err.Error())
	}
}

func writeDetail(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, detail{Detail: message}, status)
}

// notFound is the router-level fallback for unmatched paths.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusNotFound, msgNotFound)
}

// methodNotAllowed answers for verbs no route accepts, including every
// write verb on the read-only user collection.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, `Method "`+r.Method+`" not allowed.`)
}
