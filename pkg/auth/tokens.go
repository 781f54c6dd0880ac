package auth

import "context"

// TokenGenerator issues the bearer token handed back after register/login.
// The token's subject is the user id that scopes every catalog query.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
