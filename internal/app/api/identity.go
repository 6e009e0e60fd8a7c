package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wbrcli/internal/pkg/errs"
	"wbrcli/internal/pkg/req"
	"wbrcli/internal/pkg/resp"
)

// WhoAmI asks the identity provider which account the bearer token belongs to.
// The identity provider does not use the game API envelope: a 200 carries the user
// object itself, anything else is an error.
func (c *Client) WhoAmI(ctx context.Context, token string) (User, error) {
	r, err := req.JSON(ctx, http.MethodGet, c.cfg.IdentityURL, nil)
	if err != nil {
		return User{}, err
	}
	r.Header.Set("apikey", c.cfg.IdentityAPIKey)
	req.Bearer(r, token)
	if c.cfg.UserAgent != "" {
		r.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	// The identity provider lives on another host; the game cookie jar is not involved.
	res, err := c.identityHTTP().Do(r)
	if err != nil {
		return User{}, errs.Wrap(errs.ErrNetwork, err, r.URL.Host)
	}

	body, err := resp.ReadBody(res)
	if err != nil {
		return User{}, err
	}

	if res.StatusCode != http.StatusOK {
		return User{}, errs.NewError(errs.ErrRemote, fmt.Sprintf("identity provider answered %s", res.Status))
	}

	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return User{}, errs.Wrap(errs.ErrUnexpectedResponse, err, r.URL.Host)
	}
	if u.ID == "" {
		return User{}, errs.NewError(errs.ErrUnexpectedResponse, r.URL.Host)
	}

	return u, nil
}

// identityHTTP shares the transport and timeout of the game client but not its cookie jar.
func (c *Client) identityHTTP() *http.Client {
	return &http.Client{
		Transport: c.http.Transport,
		Timeout:   c.http.Timeout,
	}
}
