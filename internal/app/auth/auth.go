/*
Package auth recovers signed-in game accounts from the player's browsers.

Discovery reads the game's session cookie from every supported browser, validates each
candidate with the identity provider and resolves its display handle with the game API.
A candidate that fails any step is skipped on its own. Nothing here ever asks the player
for credentials.
*/
package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"wbrcli/internal/app/api"
	"wbrcli/internal/app/user"
	"wbrcli/internal/pkg/auth/jwt"
	"wbrcli/internal/pkg/errs"
	"wbrcli/internal/pkg/logx"
)

// Cookie is one raw cookie record read from a browser store.
type Cookie struct {
	Domain string
	Name   string
	Value  string
}

// CookieSource enumerates browser cookies set for domain with the given name.
type CookieSource interface {
	Cookies(ctx context.Context, domain, name string) ([]Cookie, error)
}

// IdentityProvider resolves a bearer token to the account it belongs to.
type IdentityProvider interface {
	WhoAmI(ctx context.Context, token string) (api.User, error)
}

// ProfileLookup resolves an account id to its game profile.
type ProfileLookup interface {
	Profile(ctx context.Context, userID string) (api.Profile, error)
}

// CredentialSink holds the session cookie that outgoing game calls carry.
type CredentialSink interface {
	SetAuthCookie(value string)
	ClearAuthCookie()
}

// Remote bundles the network capabilities the resolver needs. *api.Client implements it.
type Remote interface {
	IdentityProvider
	ProfileLookup
	CredentialSink
}

// ResolverConfig holds the settings of a Resolver.
type ResolverConfig struct {
	// CookieDomain is the host the game's session cookie is set for.
	CookieDomain string

	// CookieName is the name of the game's session cookie.
	CookieName string
}

// Resolver discovers and selects browser identities.
type Resolver struct {
	cfg     ResolverConfig
	cookies CookieSource
	remote  Remote
	now     func() time.Time
	logger  zerolog.Logger
}

// NewResolver creates a Resolver reading cookies from source and validating them with remote.
func NewResolver(cfg ResolverConfig, source CookieSource, remote Remote) *Resolver {
	return &Resolver{
		cfg:     cfg,
		cookies: source,
		remote:  remote,
		now:     time.Now,
		logger:  logx.Component("auth"),
	}
}

// Discover returns one AuthInfo per browser session that the identity provider and the
// game both accept. It fails only when the cookie stores cannot be read at all.
func (r *Resolver) Discover(ctx context.Context) ([]user.AuthInfo, error) {
	cookies, err := r.cookies.Cookies(ctx, r.cfg.CookieDomain, r.cfg.CookieName)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCookieStore, err)
	}

	var found []user.AuthInfo
	for _, c := range cookies {
		if c.Name != r.cfg.CookieName {
			continue
		}

		info, err := r.verify(ctx, c)
		if err != nil {
			r.logger.Debug().
				Str("domain", c.Domain).
				Str("kind", errs.KindOf(err).String()).
				Str("reason", errs.Message(err)).
				Msg("Skipped browser session")
			continue
		}

		r.logger.Debug().Str("domain", c.Domain).Str("user_id", info.UserID).Msg("Found browser session")
		found = append(found, info)
	}

	return found, nil
}

func (r *Resolver) verify(ctx context.Context, c Cookie) (user.AuthInfo, error) {
	// The value is re-sent verbatim, so it must survive net/http unchanged.
	if !validCookieValue(c.Value) {
		return user.AuthInfo{}, errs.NewError(errs.ErrCookieEnvelope)
	}

	token, err := jwt.BearerToken(c.Value)
	if err != nil {
		return user.AuthInfo{}, err
	}

	// Tokens that are not JWTs are left for the identity provider to judge.
	if claims, err := jwt.ParseUnverified(token); err == nil {
		if err := jwt.CheckNotExpired(claims, r.now()); err != nil {
			return user.AuthInfo{}, err
		}
	}

	u, err := r.remote.WhoAmI(ctx, token)
	if err != nil {
		return user.AuthInfo{}, err
	}
	if u.Role != jwt.AuthenticatedRole {
		return user.AuthInfo{}, errs.NewError(errs.ErrNotAuthenticated, u.Role)
	}

	r.remote.SetAuthCookie(c.Value)

	profile, err := r.remote.Profile(ctx, u.ID)
	if err != nil {
		return user.AuthInfo{}, err
	}

	return user.AuthInfo{
		UserID:     u.ID,
		Handle:     profile.Username,
		AuthCookie: c.Value,
	}, nil
}

// validCookieValue reports whether v is sent by net/http exactly as given: printable
// ASCII without quotes, separators, backslashes or spaces.
func validCookieValue(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		b := v[i]
		if b <= 0x20 || b >= 0x7f || b == '"' || b == ';' || b == '\\' || b == ',' {
			return false
		}
	}
	return true
}
