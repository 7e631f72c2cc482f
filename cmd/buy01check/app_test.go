package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Price(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		out  string
	}{
		{"valid", []string{"price", "19.99"}, exitOK, "ok\n"},
		{"not a number", []string{"price", "abc"}, exitInvalid, "Price must be a valid number\n"},
		{"below default minimum", []string{"price", "--", "-5"}, exitInvalid, "Price must be at least €0.01\n"},
		{"above maximum", []string{"price", "-max", "5", "10"}, exitInvalid, "Price cannot exceed €5.00\n"},
		{"too many decimals", []string{"price", "1.234"}, exitInvalid, "Price can have maximum 2 decimal places\n"},
		{"custom decimals", []string{"price", "-decimals", "3", "1.234"}, exitOK, "ok\n"},
		{"swedish", []string{"-lang", "sv-SE", "price", "1.234"}, exitInvalid, "Priset får ha högst 2 decimaler\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := execute(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestRun_PriceJSON(t *testing.T) {
	code, out, _ := execute(t, "-json", "price", "--", "-5")
	require.Equal(t, exitInvalid, code)

	var got struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
			Kind  string `json:"kind"`
			Code  string `json:"code"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, "Price must be at least €0.01", got.Message)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "price", got.Errors[0].Field)
	assert.Equal(t, "below_minimum", got.Errors[0].Kind)
	assert.Equal(t, "min_price", got.Errors[0].Code)
}

func TestRun_File(t *testing.T) {
	t.Run("both violations, size first", func(t *testing.T) {
		code, out, _ := execute(t, "file", "-preset", "avatar", "-name", "cv.pdf", "-size", "3145728", "-type", "application/pdf")
		assert.Equal(t, exitInvalid, code)
		assert.Equal(t,
			"File size must not exceed 2.0 MiB\n"+
				"File type application/pdf is not allowed. Allowed types: image/jpeg, image/png, image/gif, image/webp\n",
			out)
	})

	t.Run("valid image", func(t *testing.T) {
		code, out, _ := execute(t, "file", "-preset", "product_image", "-size", "1024", "-type", "image/png")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "ok\n", out)
	})

	t.Run("unknown preset", func(t *testing.T) {
		code, _, errOut := execute(t, "file", "-preset", "banner")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, `unknown preset "banner"`)
	})
}

func TestRun_HTTP(t *testing.T) {
	code, out, _ := execute(t, "http", "-status", "404", "-server-message", "Product X gone")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Product X gone\n", out)

	_, out, _ = execute(t, "http", "-status", "0", "-server-message", "ignored")
	assert.Equal(t, "Unable to connect to the server. Please check your internet connection.\n", out)

	_, out, _ = execute(t, "http", "-status", "409", "-body", `{"detail":"Email exists"}`)
	assert.Equal(t, "Email exists\n", out)

	_, out, _ = execute(t, "-json", "http", "-status", "503")
	var got httpOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 503, got.Status)
	assert.Equal(t, "service_unavailable", string(got.Kind))
	assert.Equal(t, "Service temporarily unavailable. Please try again later.", got.Message)

	code, _, _ = execute(t, "http")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Client(t *testing.T) {
	code, out, _ := execute(t, "client", "Network", "request", "failed")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Network error. Please check your connection.\n", out)

	_, out, _ = execute(t, "client", "random error")
	assert.Equal(t, "Something went wrong. Please try again.\n", out)
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := execute(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "usage: buy01check")

	code, _, errOut = execute(t, "deploy")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, `unknown command "deploy"`)

	code, _, _ = execute(t, "price")
	assert.Equal(t, exitUsage, code)
}
