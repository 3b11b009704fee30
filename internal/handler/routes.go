package handler

import (
	"net/http"

	"github.com/forgo/hangs/internal/middleware"
)

// Routes bundles everything needed to serve the API
type Routes struct {
	Hangs   *HangHandler
	Auth    *AuthHandler
	Health  *HealthHandler
	Tokens  middleware.TokenValidator
	Limiter *middleware.RateLimiter // optional; RSVP is unlimited when nil

	Recorder middleware.HTTPRecorder // optional
	Metrics  http.Handler            // optional; serves GET /metrics
}

// Register attaches all routes to mux. Metrics wrap each route inside the mux
// so requests are labeled by their matched pattern.
func (rt *Routes) Register(mux *http.ServeMux) {
	requireAuth := middleware.Auth(rt.Tokens)

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		if rt.Recorder != nil {
			mws = append([]middleware.Middleware{middleware.Metrics(rt.Recorder)}, mws...)
		}
		mux.Handle(pattern, middleware.Chain(h, mws...))
	}

	rsvp := []middleware.Middleware{middleware.RemoveBlanks}
	if rt.Limiter != nil {
		rsvp = append([]middleware.Middleware{middleware.RateLimit(rt.Limiter)}, rsvp...)
	}

	// Hangs
	handle("GET /hangs", rt.Hangs.Index)
	handle("GET /hangs/{id}", rt.Hangs.Show)
	handle("POST /hangs", rt.Hangs.Create, requireAuth)
	handle("PATCH /hangs/{id}", rt.Hangs.Update, requireAuth, middleware.RemoveBlanks)
	handle("DELETE /hangs/{id}", rt.Hangs.Delete, requireAuth)
	handle("PATCH /rsvp/{id}", rt.Hangs.RSVP, rsvp...)

	// Accounts
	handle("POST /sign-up", rt.Auth.SignUp)
	handle("POST /sign-in", rt.Auth.SignIn)
	handle("PATCH /change-password", rt.Auth.ChangePassword, requireAuth)

	// Operations
	handle("GET /health", rt.Health.Check)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}
}

// Handler returns a mux with every route registered
func (rt *Routes) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	rt.Register(mux)
	return mux
}
