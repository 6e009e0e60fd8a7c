/*
Package api implements the HTTP client for the game API and its identity provider.

Every request passes through a rate limiter and a logging transport, carries the client's
User-Agent, and shares one cookie jar, so an auth cookie attached once is sent with all
later game API calls.
*/
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"wbrcli/internal/pkg/errs"
	"wbrcli/internal/pkg/limiter"
	"wbrcli/internal/pkg/logx"
	"wbrcli/internal/pkg/req"
	"wbrcli/internal/pkg/resp"
)

const (
	vsEndpoint     = "vs"
	scoresEndpoint = "scores"
)

// Config holds the settings the client needs.
type Config struct {
	APIBase        string
	IdentityURL    string
	IdentityAPIKey string
	AuthCookieName string
	UserAgent      string
	Timeout        time.Duration
	Rate           float64
	Burst          int
}

// Client talks to the game API and the identity provider.
type Client struct {
	cfg    Config
	base   *url.URL
	http   *http.Client
	jar    http.CookieJar
	logger zerolog.Logger
}

// NewClient builds a Client with a public-suffix aware cookie jar.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("invalid API base %q: %w", cfg.APIBase, err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}

	return &Client{
		cfg:  cfg,
		base: base,
		jar:  jar,
		http: &http.Client{
			Jar:       jar,
			Timeout:   cfg.Timeout,
			Transport: limiter.NewTransport(logx.Transport(nil), limit, burst),
		},
		logger: logx.Component("api"),
	}, nil
}

// endpoint joins path segments onto the API base, escaping each one.
func (c *Client) endpoint(segments ...string) string {
	return c.base.JoinPath(segments...).String()
}

// do sends r and decodes the game API envelope into dst.
func (c *Client) do(r *http.Request, dst any) error {
	if c.cfg.UserAgent != "" {
		r.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return errs.Wrap(errs.ErrNetwork, err, r.URL.Host)
	}

	return resp.Decode(res, dst)
}

// SetAuthCookie stores the auth cookie for the API host, so later game API calls carry it.
func (c *Client) SetAuthCookie(value string) {
	c.jar.SetCookies(c.base, []*http.Cookie{{
		Name:     c.cfg.AuthCookieName,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}})
}

// ClearAuthCookie removes the auth cookie, so later game API calls are anonymous.
func (c *Client) ClearAuthCookie() {
	c.jar.SetCookies(c.base, []*http.Cookie{{
		Name:   c.cfg.AuthCookieName,
		Path:   "/",
		MaxAge: -1,
	}})
}

// HasAuthCookie reports whether requests to the API host currently carry the auth cookie.
// Calls that act on behalf of an account, such as liking a custom game, check it first.
func (c *Client) HasAuthCookie() bool {
	for _, cookie := range c.jar.Cookies(c.base) {
		if cookie.Name == c.cfg.AuthCookieName {
			return true
		}
	}
	return false
}

// Guess asks the judge whether guess beats prev in a normal game.
func (c *Client) Guess(ctx context.Context, in GuessRequest) (GuessResult, error) {
	return c.judge(ctx, in)
}

// CustomGuess asks the judge whether guess beats prev in a custom game.
func (c *Client) CustomGuess(ctx context.Context, in CustomGuessRequest) (GuessResult, error) {
	return c.judge(ctx, in)
}

func (c *Client) judge(ctx context.Context, payload any) (GuessResult, error) {
	r, err := req.JSON(ctx, http.MethodPost, c.endpoint(vsEndpoint), payload)
	if err != nil {
		return GuessResult{}, err
	}

	var v verdict
	if err := c.do(r, &v); err != nil {
		c.logger.Debug().Err(err).Msg("Judging call failed")
		return GuessResult{}, err
	}

	result, ok := v.result()
	if !ok {
		c.logger.Debug().Msg("Judging call answered without a verdict")
		return GuessResult{}, errs.NewError(errs.ErrUnexpectedResponse, r.URL.Host)
	}

	c.logger.Debug().
		Bool("guess_wins", result.GuessWins).
		Str("guess_emoji", result.GuessEmoji).
		Msg("Judging call completed")

	return result, nil
}

// SubmitScore posts an anonymous leaderboard entry.
func (c *Client) SubmitScore(ctx context.Context, in LeaderboardRequest) error {
	return c.post(ctx, in, scoresEndpoint)
}

// SubmitScoreAuthenticated posts a leaderboard entry under the account carried by the auth cookie.
func (c *Client) SubmitScoreAuthenticated(ctx context.Context, in AuthenticatedLeaderboardRequest) error {
	return c.post(ctx, in, scoresEndpoint)
}

// LikeCustomGame likes the custom game owned by oid.
func (c *Client) LikeCustomGame(ctx context.Context, oid string) error {
	return c.post(ctx, struct{}{}, "users", oid, "custom", "like")
}

// post sends a request whose success payload carries nothing the client needs.
func (c *Client) post(ctx context.Context, payload any, segments ...string) error {
	r, err := req.JSON(ctx, http.MethodPost, c.endpoint(segments...), payload)
	if err != nil {
		return err
	}

	err = c.do(r, nil)
	if errs.IsKind(err, errs.KindProtocol) && !errors.Is(err, errs.NewError(errs.ErrRemote)) {
		// Fire-and-forget endpoints do not always answer with an envelope.
		c.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Ignoring non-envelope response")
		return nil
	}
	return err
}

// CustomGame fetches the custom game owned by oid.
func (c *Client) CustomGame(ctx context.Context, oid string) (CustomGame, error) {
	r, err := req.JSON(ctx, http.MethodGet, c.endpoint("users", oid, "custom"), nil)
	if err != nil {
		return CustomGame{}, err
	}

	var data customGameData
	if err := c.do(r, &data); err != nil {
		return CustomGame{}, err
	}
	return data.AttributeData, nil
}

// Profile looks up a game account by the identity provider's user id.
func (c *Client) Profile(ctx context.Context, userID string) (Profile, error) {
	return c.profile(ctx, "users", userID, "profile")
}

// ProfileByHandle looks up a game account by its handle.
func (c *Client) ProfileByHandle(ctx context.Context, handle string) (Profile, error) {
	return c.profile(ctx, "users", "by-username", handle)
}

func (c *Client) profile(ctx context.Context, segments ...string) (Profile, error) {
	r, err := req.JSON(ctx, http.MethodGet, c.endpoint(segments...), nil)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := c.do(r, &p); err != nil {
		return Profile{}, err
	}
	if p.ID == "" || p.Username == "" {
		return Profile{}, errs.NewError(errs.ErrUnexpectedResponse, r.URL.Host)
	}
	return p, nil
}
