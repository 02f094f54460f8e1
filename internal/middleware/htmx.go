package middleware

import (
	"net/http"
)

// HTMXRequest is what the htmx client tells us about a request.
type HTMXRequest struct {
	Target     string // HX-Target, e.g. "propertiesGrid"
	Trigger    string // HX-Trigger, id of the control that fired
	CurrentURL string // HX-Current-URL
}

// HTMX marks requests coming from htmx so handlers can answer with fragments.
// Responses vary on HX-Request because the same URL may serve a page or a
// fragment.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		if r.Header.Get("HX-Request") != "true" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := withHTMXRequest(r.Context(), HTMXRequest{
			Target:     r.Header.Get("HX-Target"),
			Trigger:    r.Header.Get("HX-Trigger"),
			CurrentURL: r.Header.Get("HX-Current-URL"),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
