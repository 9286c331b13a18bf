package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/cramdesk/auth-service/internal/application/auth"
	"github.com/cramdesk/auth-service/internal/config"
	"github.com/cramdesk/auth-service/internal/infrastructure/db/postgres"
	"github.com/cramdesk/auth-service/internal/infrastructure/redis"
	"github.com/cramdesk/auth-service/internal/infrastructure/security"
	"github.com/cramdesk/auth-service/internal/logger"
	http_handlers "github.com/cramdesk/auth-service/internal/transport/http/handlers"
	"github.com/cramdesk/auth-service/internal/transport/http/middleware"
	"github.com/cramdesk/auth-service/internal/transport/http/response"
	"github.com/cramdesk/auth-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
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
	NewDB      func(addr string, debug bool) (DBCloser, error)
	NewRedis   func(addr string) RedisClient
	NewRouter  func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
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

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := postgres.EnsureSchema(ctx, sqlDB)
		cancel()
		if err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	userRepo := postgres.NewUserRepo(sqlDB)

	// 2) redis (best-effort; only rate limiting depends on it)
	var limiter *redis.FixedWindowLimiter
	if cfg.RedisAddr != "" && deps.NewRedis != nil {
		c := deps.NewRedis(cfg.RedisAddr)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			if rc, ok := c.(*redis.Client); ok {
				limiter = redis.NewFixedWindowLimiter(rc)
			}
		}
	}

	// 3) security
	hasher := security.NewBcryptHasher(security.DefaultCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, "auth-service")

	// 4) service
	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{
		TokenTTL: cfg.TokenTTL,
	})

	// 5) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	healthH := http_handlers.NewHealthHandler()
	uploadH := http_handlers.NewUploadHandler(cfg.MaxUploadSize)

	authMW := middleware.Auth(signer, response.WriteError)

	rl := func(key string, limit int, window time.Duration) func(http.Handler) http.Handler {
		if limiter == nil {
			return nil
		}
		return middleware.RateLimitFixedWindow(
			limiter,
			middleware.FixedWindowConfig{RouteKey: key, Limit: limit, Window: window},
			response.WriteError,
		)
	}

	// 6) router
	mux, err := deps.NewRouter(router.Deps{
		Health:      healthH,
		Auth:        authH,
		Upload:      uploadH,
		AuthMW:      authMW,
		BodyLimitMW: middleware.BodyLimit(cfg.MaxJSONBody),
		CORSMW:      middleware.CORS(cfg.CORSAllowedOrigins),

		RLAuth:   rl("auth", 20, 15*time.Minute),
		RLUpload: rl("upload", 10, 15*time.Minute),
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 7) server
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
		NewRedis: func(addr string) RedisClient {
			return redis.New(addr)
		},
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
