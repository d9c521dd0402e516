package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/hallfrida/ordasafn-backend/internal/config"
)

// NewHandler builds the GraphQL HTTP handler from an executable schema.
// Introspection and the complexity limit are driven by configuration so
// that production deployments can lock the schema down while development
// instances stay explorable.
func NewHandler(es graphql.ExecutableSchema, cfg config.GraphQLConfig, log *slog.Logger) http.Handler {
	srv := handler.New(es)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New(1000))
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New(100)})

	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	srv.SetErrorPresenter(NewErrorPresenter(log))
	srv.SetRecoverFunc(func(ctx context.Context, err interface{}) error {
		log.ErrorContext(ctx, "panic in resolver", slog.Any("panic", err))
		return fmt.Errorf("internal error")
	})

	return srv
}

// NewPlaygroundHandler serves the interactive GraphQL playground pointed at
// the given query endpoint.
func NewPlaygroundHandler(endpoint string) http.Handler {
	return playground.Handler("Ordasafn GraphQL", endpoint)
}
