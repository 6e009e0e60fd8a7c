/*
Package resp provides helpers for decoding responses from the game API.

Every game API response is either a success envelope carrying a "data" member or an
error envelope carrying an "error" message. Decode unwraps the former and turns the
latter into a protocol error that carries the remote message.
*/
package resp

import (
	"encoding/json"
	"io"
	"net/http"

	"wbrcli/internal/pkg/errs"
)

// MaxBodySize bounds how much of a response body is read.
const MaxBodySize int64 = 1 << 20 // 1 MB

// envelope is the union of the success and error response shapes.
type envelope struct {
	// Data is the success payload.
	Data json.RawMessage `json:"data"`

	// Error is the remote error message.
	Error *string `json:"error"`
}

// ReadBody reads at most MaxBodySize bytes of the response body and closes it.
func ReadBody(r *http.Response) ([]byte, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		return nil, errs.Wrap(errs.ErrNetwork, err, r.Request.URL.Host)
	}
	return body, nil
}

// Decode reads the response body and unmarshals its "data" member into dst.
// A nil dst only checks that the response was not an error envelope.
func Decode(r *http.Response, dst any) error {
	body, err := ReadBody(r)
	if err != nil {
		return err
	}
	return DecodeBody(body, r.Request.URL.Host, dst)
}

// DecodeBody is Decode for an already-read body. source names the remote side in error messages.
func DecodeBody(body []byte, source string, dst any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errs.Wrap(errs.ErrUnexpectedResponse, err, source)
	}

	if env.Error != nil {
		return errs.NewError(errs.ErrRemote, *env.Error)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		if dst == nil {
			return nil
		}
		return errs.NewError(errs.ErrUnexpectedResponse, source)
	}

	if dst == nil {
		return nil
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		return errs.Wrap(errs.ErrUnexpectedResponse, err, source)
	}

	return nil
}
