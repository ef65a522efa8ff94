package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/audit"
	"github.com/hrkit/employee-service/internal/config"
	"github.com/hrkit/employee-service/internal/infrastructure/db/postgres"
	"github.com/hrkit/employee-service/internal/infrastructure/security"
	"github.com/hrkit/employee-service/internal/logger"
	http_handlers "github.com/hrkit/employee-service/internal/transport/http/handlers"
	"github.com/hrkit/employee-service/internal/transport/http/middleware"
	"github.com/hrkit/employee-service/internal/transport/http/response"
	"github.com/hrkit/employee-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	Migrate func(ctx context.Context, db *sql.DB) error

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) schema
	if deps.Migrate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := deps.Migrate(ctx, sqlDB); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	// 3) repos
	employeeRepo := postgres.NewEmployeeRepo(sqlDB)
	profileRepo := postgres.NewProfileRepo(sqlDB)

	// 4) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// Registration is admin-gated, so the first admin comes from the env.
	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		postgres.SeedBootstrapAdmin(context.Background(), employeeRepo, hasher,
			cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	}

	// 5) service
	svc := employee.NewService(employeeRepo, profileRepo, hasher, signer, employee.Config{
		TokenTTL: cfg.TokenTTL,
	})

	// 6) handlers + middleware
	aud := audit.New(logger.Logger)
	authH := http_handlers.NewAuthHandler(svc, aud)
	employeeH := http_handlers.NewEmployeeHandler(svc, aud)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(signer, response.WriteError)
	adminMW := middleware.RequireAdmin(response.WriteError)

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:    healthH,
		Auth:      authH,
		Employees: employeeH,
		AuthMW:    authMW,
		AdminMW:   adminMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		Migrate: postgres.Migrate,
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
