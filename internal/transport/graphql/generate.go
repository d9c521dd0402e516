// Package graphql provides the GraphQL transport layer for the dictionary
// backend: schema, resolvers, and error handling. Scalar types (UUID,
// DateTime) and the executable schema are generated via gqlgen from the
// schema file; run `go generate ./...` after editing schema.graphqls.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
