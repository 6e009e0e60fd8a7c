package jwt

import (
	"encoding/json"
	"net/url"

	"wbrcli/internal/pkg/errs"
)

// DecodeCookieEnvelope URL-decodes an auth cookie value and parses it as the
// provider's multi-part token list, a JSON array of optional strings.
// The first element is the bearer access token.
func DecodeCookieEnvelope(value string) ([]*string, error) {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCookieEnvelope, err)
	}

	var parts []*string
	if err := json.Unmarshal([]byte(decoded), &parts); err != nil {
		return nil, errs.Wrap(errs.ErrCookieEnvelope, err)
	}

	return parts, nil
}

// BearerToken extracts the access token from an auth cookie value.
func BearerToken(value string) (string, error) {
	parts, err := DecodeCookieEnvelope(value)
	if err != nil {
		return "", err
	}

	if len(parts) == 0 || parts[0] == nil || *parts[0] == "" {
		return "", errs.NewError(errs.ErrCookieEnvelope)
	}

	return *parts[0], nil
}
