// Package tests contains end-to-end acceptance tests for the hangs API.
//
// These tests drive the full HTTP stack against a real SurrealDB instance
// to validate actual database behavior including schema assertions and
// unique indexes.
//
// To run tests:
//  1. Start SurrealDB: surreal start memory --user root --pass root
//  2. Run tests: go test ./tests/...
//
// Tests are skipped when the database is unreachable.
//
// Environment variables:
//
//	TEST_DB_HOST     - SurrealDB host (default: localhost)
//	TEST_DB_PORT     - SurrealDB port (default: 8000)
//	TEST_DB_USER     - SurrealDB username (default: root)
//	TEST_DB_PASSWORD - SurrealDB password (default: root)
package tests

import (
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/hangs/internal/handler"
	"github.com/forgo/hangs/internal/middleware"
	"github.com/forgo/hangs/internal/repository"
	"github.com/forgo/hangs/internal/service"
	"github.com/forgo/hangs/internal/testing/fixtures"
	"github.com/forgo/hangs/internal/testing/helpers"
	"github.com/forgo/hangs/internal/testing/testdb"
	"github.com/forgo/hangs/pkg/metrics"
)

// testAPI is a fully wired server plus the pieces tests poke at directly
type testAPI struct {
	http.Handler
	DB       *testdb.TestDB
	Fixtures *fixtures.Factory
	JWT      *helpers.JWTHelper
	Metrics  *metrics.Manager
}

// newAPI wires repositories, services and routes the same way the server
// binary does, against an isolated database.
func newAPI(t *testing.T) *testAPI {
	t.Helper()

	tdb := testdb.New(t)
	jwtHelper := helpers.NewJWTHelper(t)
	metricsManager := metrics.NewManager()

	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService: jwtHelper.Service,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     repository.NewUserRepository(tdb.DB),
		TokenService: tokenService,
		HashCost:     bcrypt.MinCost,
	})
	hangService := service.NewHangService(service.HangServiceConfig{
		HangRepo: repository.NewHangRepository(tdb.DB),
		Recorder: metricsManager,
	})

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100,
		Window: time.Minute,
		Burst:  20,
	})
	t.Cleanup(limiter.Stop)

	routes := &handler.Routes{
		Hangs:    handler.NewHangHandler(hangService),
		Auth:     handler.NewAuthHandler(authService),
		Health:   handler.NewHealthHandler(tdb.DB),
		Tokens:   tokenService,
		Limiter:  limiter,
		Recorder: metricsManager,
		Metrics:  metricsManager.Handler(),
	}

	return &testAPI{
		Handler: middleware.Chain(
			routes.Handler(),
			middleware.Recovery,
			middleware.RequestID,
			middleware.CORS([]string{"http://localhost:3000"}),
		),
		DB:       tdb,
		Fixtures: fixtures.New(tdb.DB),
		JWT:      jwtHelper,
		Metrics:  metricsManager,
	}
}
