package jwt

import "github.com/golang-jwt/jwt"

// Payload is the subset of identity-provider access token claims the client inspects.
// The token is never verified locally; the identity provider remains the authority.
type Payload struct {
	// StandardClaims carries exp, iat, iss and sub (the user id).
	jwt.StandardClaims

	// Role is the identity-provider role, "authenticated" for signed-in users.
	Role string `json:"role"`
}
