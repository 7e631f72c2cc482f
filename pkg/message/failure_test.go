package message_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oafilali/buy01/pkg/message"
)

func TestParseFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", 404, `{"message":"Product X gone"}`, "Product X gone"},
		{"problem detail", 409, `{"type":"about:blank","title":"Conflict","detail":"Email exists"}`, "Email exists"},
		{"message wins over detail", 400, `{"message":"first","detail":"second"}`, "first"},
		{"blank message falls through", 400, `{"message":"  ","detail":"second"}`, "second"},
		{"error string", 422, `{"error":"Price too low"}`, "Price too low"},
		{"error reason phrase ignored", 404, `{"status":404,"error":"Not Found","path":"/api/products/1"}`, ""},
		{"error object ignored", 400, `{"error":{"code":42}}`, ""},
		{"not json", 500, `<html>oops</html>`, ""},
		{"json array", 400, `["a"]`, ""},
		{"empty body", 404, ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := message.ParseFailure(tt.status, []byte(tt.body))
			require.NotNil(t, f)
			assert.Equal(t, tt.status, f.Status)
			assert.Equal(t, tt.want, f.ServerMessage)
		})
	}
}

func TestFailureFromResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Product X gone"}`)
		case "/down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			_, _ = io.WriteString(w, `{"ok":true}`)
		}
	}))
	t.Cleanup(srv.Close)

	get := func(t *testing.T, path string) *http.Response {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	t.Run("error with body", func(t *testing.T) {
		f := message.FailureFromResponse(get(t, "/missing"))
		require.NotNil(t, f)
		assert.Equal(t, 404, f.Status)
		assert.Equal(t, "Product X gone", message.HTTP(*f))
	})

	t.Run("error without body", func(t *testing.T) {
		f := message.FailureFromResponse(get(t, "/down"))
		require.NotNil(t, f)
		assert.Equal(t, message.KindServiceUnavailable, message.Classify(*f))
	})

	t.Run("success is not a failure", func(t *testing.T) {
		assert.Nil(t, message.FailureFromResponse(get(t, "/")))
	})

	t.Run("nil response", func(t *testing.T) {
		f := message.FailureFromResponse(nil)
		require.NotNil(t, f)
		assert.Equal(t, 0, f.Status)
	})

	t.Run("oversized body is truncated", func(t *testing.T) {
		body := `{"message":"` + strings.Repeat("x", 70<<10) + `"}`
		resp := &http.Response{StatusCode: 400, Body: io.NopCloser(strings.NewReader(body))}
		f := message.FailureFromResponse(resp)
		require.NotNil(t, f)
		assert.Empty(t, f.ServerMessage)
	})
}

func TestFailureFromError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, message.FailureFromError(nil))

	cause := errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")
	f := message.FailureFromError(cause)
	require.NotNil(t, f)
	assert.Equal(t, 0, f.Status)
	assert.ErrorIs(t, f, cause)
	assert.ErrorIs(t, f, message.ErrNetworkUnreachable)
	assert.Contains(t, f.Error(), "connection refused")

	wrapped := &message.Failure{Status: 409, ServerMessage: "Email exists"}
	assert.Same(t, wrapped, message.FailureFromError(fmt.Errorf("register: %w", wrapped)))
}

func TestFailure_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "network unreachable", (&message.Failure{}).Error())
	assert.Equal(t, "request failed: status 500", (&message.Failure{Status: 500}).Error())
	assert.Equal(t, "request failed: status 404: gone", (&message.Failure{Status: 404, ServerMessage: "gone"}).Error())
	assert.ErrorIs(t, &message.Failure{Status: 500}, message.ErrRequestFailed)
	assert.NotErrorIs(t, &message.Failure{Status: 500}, message.ErrNetworkUnreachable)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[int]message.Kind{
		0:   message.KindNetworkUnreachable,
		400: message.KindUnknownHTTPError,
		401: message.KindUnauthorized,
		403: message.KindForbidden,
		404: message.KindNotFound,
		409: message.KindConflict,
		418: message.KindUnknownHTTPError,
		422: message.KindUnprocessableEntity,
		500: message.KindServerError,
		502: message.KindServerError,
		503: message.KindServiceUnavailable,
		599: message.KindServerError,
	}
	for status, want := range tests {
		assert.Equal(t, want, message.Classify(message.Failure{Status: status}), "status %d", status)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, message.Kind(""), message.KindOf(nil))
	assert.Equal(t, message.KindNotFound, message.KindOf(fmt.Errorf("load: %w", &message.Failure{Status: 404})))
	assert.Equal(t, message.KindClientRuntimeError, message.KindOf(errors.New("quota exceeded")))
}
