package http

import (
	jwtinfra "github.com/go-chat-nosql/internal/infrastructure/jwt"
	"github.com/go-chat-nosql/internal/store"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	// Store is the single-table backend: the DynamoDB adapter in production,
	// the in-memory reference store for local runs and tests.
	Store store.Store

	JWTProvider *jwtinfra.Provider
}
