package http

import (
	"net/http"
	"strconv"

	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/models"
)

// parseListQuery extracts the shared collection parameters from the request:
// free-text search, ordering, the 1-based page number, and the given
// exact-match filter keys. A page value that is not a positive integer is
// rejected as [errInvalidPage].
func parseListQuery(r *http.Request, filterKeys ...string) (models.ListQuery, error) {
	values := r.URL.Query()

	q := models.ListQuery{
		Search:   values.Get("search"),
		Ordering: values.Get("ordering"),
		Page:     1,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return models.ListQuery{}, errInvalidPage
		}
		q.Page = page
	}

	for _, key := range filterKeys {
		if v := values.Get(key); v != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string, len(filterKeys))
			}
			q.Filters[key] = v
		}
	}

	return q, nil
}

// buildPage assembles the uniform collection envelope around one page of
// results. Requesting a page past the end of the collection (other than an
// empty first page) is [errInvalidPage].
func buildPage(r *http.Request, q models.ListQuery, results any, total int64) (models.Page, error) {
	page := q.PageNumber()
	if page > 1 && int64(q.Offset()) >= total {
		return models.Page{}, errInvalidPage
	}

	envelope := models.Page{Count: total, Results: results}
	if int64(page)*models.PageSize < total {
		envelope.Next = pageURL(r, page+1)
	}
	if page > 1 {
		envelope.Previous = pageURL(r, page-1)
	}

	return envelope, nil
}

// pageURL rebuilds the request URL as an absolute link pointing at the given
// page. The first page omits the page parameter entirely.
func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	values := u.Query()
	if page <= 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = values.Encode()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	abs := scheme + "://" + r.Host + u.Path
	if u.RawQuery != "" {
		abs += "?" + u.RawQuery
	}
	return &abs
}

// writePage parses the collection parameters, fetches one page through list,
// and renders the envelope. Shared by every paginated collection endpoint.
func (h *Handler) writePage(
	w http.ResponseWriter,
	r *http.Request,
	list func(q models.ListQuery) (any, int64, error),
	filterKeys ...string,
) {
	q, err := parseListQuery(r, filterKeys...)
	if err != nil {
		writeDetail(w, http.StatusNotFound, msgInvalidPage)
		return
	}

	results, total, err := list(q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	envelope, err := buildPage(r, q, results, total)
	if err != nil {
		writeDetail(w, http.StatusNotFound, msgInvalidPage)
		return
	}

	utils.WriteJSON(w, envelope, http.StatusOK)
}
