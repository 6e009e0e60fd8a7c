package jwt

import (
	"time"

	"github.com/golang-jwt/jwt"

	"wbrcli/internal/pkg/errs"
)

// AuthenticatedRole is the role the identity provider reports for signed-in users.
const AuthenticatedRole = "authenticated"

// ParseUnverified decodes the claims of tokenString without checking its signature.
// It fails when the string is not a JWT at all.
func ParseUnverified(tokenString string) (*Payload, error) {
	claims := &Payload{}

	parser := &jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// CheckNotExpired returns ErrTokenExpired when the token carries an expiry before now.
// A token without an exp claim is accepted.
func CheckNotExpired(p *Payload, now time.Time) error {
	if !p.VerifyExpiresAt(now.Unix(), false) {
		return errs.NewError(errs.ErrTokenExpired)
	}
	return nil
}
