package message

import "errors"

var (
	// ErrNetworkUnreachable wraps transport errors that never produced a response.
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrRequestFailed marks a response with a 4xx or 5xx status.
	ErrRequestFailed = errors.New("request failed")
)
