package types

import "github.com/google/uuid"

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
}
