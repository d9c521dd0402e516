package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hallfrida/ordasafn-backend/internal/adapter/postgres"
	languagerepo "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres/language"
	userrepo "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres/user"
	wordrepo "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres/word"
	"github.com/hallfrida/ordasafn-backend/internal/adapter/provider/appwrite"
	"github.com/hallfrida/ordasafn-backend/internal/auth"
	"github.com/hallfrida/ordasafn-backend/internal/config"
	languagesvc "github.com/hallfrida/ordasafn-backend/internal/service/language"
	usersvc "github.com/hallfrida/ordasafn-backend/internal/service/user"
	wordsvc "github.com/hallfrida/ordasafn-backend/internal/service/word"
	gqltransport "github.com/hallfrida/ordasafn-backend/internal/transport/graphql"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/generated"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/resolver"
	"github.com/hallfrida/ordasafn-backend/internal/transport/middleware"
	"github.com/hallfrida/ordasafn-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and the GraphQL transport,
// and serves HTTP until the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	languages := languagerepo.New(pool)
	words := wordrepo.New(pool)
	users := userrepo.New(pool)

	sessions := appwrite.NewClient(cfg.Sessions, logger)
	adminGuard := auth.NewAdminGuard(cfg.Auth.AdminKey)

	languageService := languagesvc.NewService(logger, languages, words, users)
	wordService := wordsvc.NewService(logger, words, languages)
	userService := usersvc.NewService(logger, users, languages, words, adminGuard)

	root := resolver.NewResolver(logger, languageService, wordService, userService)
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: root})
	gqlHandler := gqltransport.NewHandler(schema, cfg.GraphQL, logger)

	health := rest.NewHealthHandler(pool, BuildVersion())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(sessions, logger),
	)

	mux := http.NewServeMux()
	mux.Handle("/graphql", gqlHandler)
	mux.HandleFunc("/health", health.Health)
	mux.HandleFunc("/health/live", health.Live)
	mux.HandleFunc("/health/ready", health.Ready)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("/playground", gqltransport.NewPlaygroundHandler("/graphql"))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
