/*
Package req provides helper functions for building outbound HTTP requests.

It encapsulates JSON payload encoding and the headers every game API call carries,
so the API client only deals with endpoints and payload types.
*/
package req

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"wbrcli/internal/pkg/errs"
)

// ContentTypeJSON is the media type of every request body sent to the game API.
const ContentTypeJSON = "application/json"

// JSON builds a request whose body is the JSON encoding of payload.
// A nil payload produces a request without a body.
func JSON(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(errs.ErrInvalidRequest, err)
		}
		body = bytes.NewReader(data)
	}

	r, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidRequest, err)
	}

	if payload != nil {
		r.Header.Set("Content-Type", ContentTypeJSON)
	}
	r.Header.Set("Accept", ContentTypeJSON)

	return r, nil
}

// Bearer sets the Authorization header to a bearer credential.
func Bearer(r *http.Request, token string) {
	r.Header.Set("Authorization", "Bearer "+token)
}
