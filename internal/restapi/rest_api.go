package restapi

import (
	"net/http"
	"time"

	"launchdash/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler wraps the routed handler with the server-wide middleware. The
// request ID is assigned first so every later layer can log it.
func (api *RestAPI) Handler(routes http.Handler) http.Handler {
	handler := CompressionMiddleware(routes)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return RequestIDMiddleware(handler)
}

// Shutdown releases background resources held by the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
