package http

import (
	"errors"
	"net/http"
	"strconv"
)

// errMissingID distinguishes an absent id parameter from an unparsable one;
// the former is a BadRequest, the latter behaves like a lookup miss (a
// non-numeric id can never match a row).
var errMissingID = errors.New("missing id parameter")

// queryID reads the ?id= parameter used by the search endpoints.
func queryID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, errMissingID
	}
	return strconv.ParseInt(raw, 10, 64)
}

// pathID reads the {id} path segment used by update/delete endpoints.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
