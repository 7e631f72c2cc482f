package message

import (
	"errors"
	"net/http"
)

// Kind is the transport side failure taxonomy.
type Kind string

const (
	KindNetworkUnreachable  Kind = "network_unreachable"
	KindUnauthorized        Kind = "unauthorized"
	KindForbidden           Kind = "forbidden"
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindUnprocessableEntity Kind = "unprocessable_entity"
	KindServerError         Kind = "server_error"
	KindServiceUnavailable  Kind = "service_unavailable"
	KindUnknownHTTPError    Kind = "unknown_http_error"
	KindClientRuntimeError  Kind = "client_runtime_error"
)

// Classify maps a failure status onto its Kind.
func Classify(f Failure) Kind {
	switch f.Status {
	case 0:
		return KindNetworkUnreachable
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnprocessableEntity:
		return KindUnprocessableEntity
	case http.StatusServiceUnavailable:
		return KindServiceUnavailable
	}
	if f.Status >= http.StatusInternalServerError {
		return KindServerError
	}
	return KindUnknownHTTPError
}

// KindOf classifies any error. Errors wrapping a *Failure are classified by
// status, everything else is a client runtime error. Nil yields "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return Classify(*f)
	}
	return KindClientRuntimeError
}
