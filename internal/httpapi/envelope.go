package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"irisd/pkg/types"
)

// writeEnvelope wraps a handler result into the uniform response envelope:
// message, originating method and URL, a timestamp, the status code, and an
// optional data section. Every domain endpoint goes through here.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.Envelope{
		Message:    message,
		Method:     r.Method,
		StatusCode: status,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
		URL:        requestURL(r),
		Data:       data,
	})
}

// requestURL reconstructs the full request URL; on the server side r.URL
// carries only the path and query.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
