package httpapi

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
)

func TestRequestURL(t *testing.T) {
	r := httptest.NewRequest("GET", "http://localhost:8080/models?verbose=1", nil)
	if got := requestURL(r); got != "http://localhost:8080/models?verbose=1" {
		t.Fatalf("requestURL=%q", got)
	}
}

func TestRequestURL_TLS(t *testing.T) {
	r := httptest.NewRequest("GET", "https://api.test/models/tree", nil)
	r.TLS = &tls.ConnectionState{}
	if got := requestURL(r); got != "https://api.test/models/tree" {
		t.Fatalf("requestURL=%q", got)
	}
}
