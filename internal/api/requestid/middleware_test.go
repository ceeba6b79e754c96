package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareMintsID(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatal("expected an id in the request context")
	}
	if got := rr.Header().Get(Header); got != seen {
		t.Fatalf("response header %q, context id %q", got, seen)
	}
}

func TestMiddlewareEchoesCallerID(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "caller-supplied")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get(Header); got != "caller-supplied" {
		t.Fatalf("expected caller id echoed back, got %q", got)
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := FromContext(req.Context()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
