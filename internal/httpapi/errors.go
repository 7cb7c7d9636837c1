package httpapi

import "net/http"

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeError writes a failure envelope: message and status, no data section.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeEnvelope(w, r, status, msg, nil)
}
