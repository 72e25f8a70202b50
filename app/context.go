package main

import (
	"context"
	"net/http"

	"github.com/okuznetsov/blogware/internal/tokenservice"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func (app *application) createClaimsContext(r *http.Request, claims *tokenservice.AccessClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

// getClaimsContext returns the authenticated caller's claims, or nil for an
// anonymous request.
func (app *application) getClaimsContext(r *http.Request) *tokenservice.AccessClaims {
	claims, ok := r.Context().Value(claimsContextKey).(*tokenservice.AccessClaims)
	if !ok {
		return nil
	}
	return claims
}
