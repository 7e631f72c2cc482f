package message

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps how much of an error response body is read.
const maxBodyBytes = 64 << 10

// Failure describes a failed request after the network layer normalized it.
// Status 0 means no response was received.
type Failure struct {
	Status        int    `json:"status"`
	ServerMessage string `json:"message,omitempty"`
	Err           error  `json:"-"`
}

func (f *Failure) Error() string {
	if f.Status == 0 {
		if f.Err != nil {
			return fmt.Sprintf("%s: %v", ErrNetworkUnreachable, f.Err)
		}
		return ErrNetworkUnreachable.Error()
	}
	if f.ServerMessage != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrRequestFailed, f.Status, f.ServerMessage)
	}
	return fmt.Sprintf("%s: status %d", ErrRequestFailed, f.Status)
}

// Unwrap exposes the transport error and the matching sentinel.
func (f *Failure) Unwrap() []error {
	sentinel := ErrRequestFailed
	if f.Status == 0 {
		sentinel = ErrNetworkUnreachable
	}
	if f.Err != nil {
		return []error{sentinel, f.Err}
	}
	return []error{sentinel}
}

// errorBody covers the common error payloads: {"message": ...},
// RFC 7807 problem details and {"error": ...}.
type errorBody struct {
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Error   json.RawMessage `json:"error"`
}

// ParseFailure builds a Failure from a status and a response body. The server
// message is the first non-empty JSON "message", then "detail", then "error"
// when it is a string other than the status reason phrase. Bodies that are not
// JSON objects carry no server message.
func ParseFailure(status int, body []byte) *Failure {
	f := &Failure{Status: status}

	var b errorBody
	if len(body) == 0 || json.Unmarshal(body, &b) != nil {
		return f
	}

	switch {
	case strings.TrimSpace(b.Message) != "":
		f.ServerMessage = b.Message
	case strings.TrimSpace(b.Detail) != "":
		f.ServerMessage = b.Detail
	default:
		var s string
		if len(b.Error) > 0 && json.Unmarshal(b.Error, &s) == nil &&
			strings.TrimSpace(s) != "" && !strings.EqualFold(s, http.StatusText(status)) {
			f.ServerMessage = s
		}
	}
	return f
}

// FailureFromResponse returns nil for responses below 400. Otherwise it reads
// up to 64 KiB of the body and parses it with ParseFailure. The caller still
// owns resp.Body and must close it. A nil response is a network failure.
func FailureFromResponse(resp *http.Response) *Failure {
	if resp == nil {
		return &Failure{}
	}
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	if resp.Body == nil {
		return &Failure{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Failure{Status: resp.StatusCode, Err: err}
	}
	return ParseFailure(resp.StatusCode, body)
}

// FailureFromError normalizes a transport error into a status 0 Failure.
// An error that already wraps a Failure is returned as that Failure.
func FailureFromError(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Err: err}
}
