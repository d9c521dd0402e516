package domain

// User is an application user. The ID is an opaque, stable identifier
// assigned by the external identity provider; users are never created
// through self-registration in this layer.
type User struct {
	ID       string
	Username string
}
