package model

import (
	"fmt"
	"io"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// DateTime wraps time.Time for GraphQL scalar marshaling.
type DateTime time.Time

func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+t.Format(time.RFC3339)+`"`)
	})
}

func UnmarshalDateTime(v interface{}) (time.Time, error) {
	switch v := v.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

// UUID wraps uuid.UUID for GraphQL scalar marshaling.
type UUID uuid.UUID

// MarshalUUID marshals UUID to GraphQL string.
func MarshalUUID(u uuid.UUID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+u.String()+`"`)
	})
}

// UnmarshalUUID unmarshals GraphQL string to UUID. A string that does not
// parse is a caller input error, not an internal one.
func UnmarshalUUID(v interface{}) (uuid.UUID, error) {
	switch v := v.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.UUID{}, fmt.Errorf("%w: invalid UUID %q", domain.ErrValidation, v)
		}
		return id, nil
	default:
		return uuid.UUID{}, fmt.Errorf("%w: UUID must be a string", domain.ErrValidation)
	}
}
