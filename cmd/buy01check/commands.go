package main

import (
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/oafilali/buy01/pkg/file"
	"github.com/oafilali/buy01/pkg/message"
	"github.com/oafilali/buy01/pkg/validator"
)

type checkOutput struct {
	Valid    bool                       `json:"valid"`
	Message  string                     `json:"message,omitempty"`
	Messages []string                   `json:"messages,omitempty"`
	Errors   validator.ValidationErrors `json:"errors,omitempty"`
}

func (a *app) price(args []string, stderr io.Writer) (bool, error) {
	fs := subcommand("price", stderr)
	minPrice := fs.Float64("min", validator.DefaultMinPrice, "inclusive minimum")
	maxPrice := fs.Float64("max", math.NaN(), "inclusive maximum (unbounded when unset)")
	decimals := fs.Int("decimals", validator.DefaultMaxDecimals, "allowed decimal places")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() != 1 {
		return false, usagef("price takes exactly one value")
	}

	opts := []validator.PriceOption{validator.WithMinPrice(*minPrice), validator.WithMaxDecimals(*decimals)}
	if !math.IsNaN(*maxPrice) {
		opts = append(opts, validator.WithMaxPrice(*maxPrice))
	}

	errs := validator.Price("price", fs.Arg(0), opts...)()
	out := checkOutput{Valid: errs.IsEmpty(), Errors: errs}
	text := "ok"
	if !out.Valid {
		out.Message = a.resolver.Field(errs, "price")
		text = out.Message
	}
	return out.Valid, a.print(text, out)
}

func (a *app) file(args []string, stderr io.Writer) (bool, error) {
	fs := subcommand("file", stderr)
	preset := fs.String("preset", file.PresetAvatar, "constraint profile")
	name := fs.String("name", "", "file name")
	size := fs.Int64("size", 0, "file size in bytes")
	mimeType := fs.String("type", "", "MIME type")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() != 0 {
		return false, usagef("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	presets, err := file.LoadPresets()
	if err != nil {
		return false, err
	}
	profile, ok := presets.Get(*preset)
	if !ok {
		return false, usagef("unknown preset %q", *preset)
	}

	d := file.Descriptor{Name: file.SanitizeFilename(*name), Size: *size, MIMEType: *mimeType}
	a.log.Debug("checking file",
		slog.String("preset", profile.Name),
		slog.String("name", d.Name),
		slog.Int64("size", d.Size),
	)
	errs := file.Rule("file", d, profile)()

	out := checkOutput{Valid: errs.IsEmpty(), Errors: errs}
	text := "ok"
	for _, e := range errs {
		out.Messages = append(out.Messages, a.resolver.Message(e))
	}
	if !out.Valid {
		out.Message = out.Messages[0]
		text = strings.Join(out.Messages, "\n")
	}
	return out.Valid, a.print(text, out)
}

type httpOutput struct {
	Status  int          `json:"status"`
	Kind    message.Kind `json:"kind"`
	Message string       `json:"message"`
}

func (a *app) http(args []string, stderr io.Writer) (bool, error) {
	fs := subcommand("http", stderr)
	status := fs.Int("status", -1, "HTTP status, 0 for no response")
	serverMessage := fs.String("server-message", "", "message sent by the server")
	body := fs.String("body", "", "raw response body to extract the server message from")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if *status < 0 {
		return false, usagef("http requires -status")
	}

	f := message.Failure{Status: *status, ServerMessage: *serverMessage}
	if *body != "" && f.ServerMessage == "" {
		f = *message.ParseFailure(*status, []byte(*body))
	}

	out := httpOutput{Status: f.Status, Kind: message.Classify(f), Message: a.resolver.HTTP(f)}
	return true, a.print(out.Message, out)
}

type clientOutput struct {
	Kind    message.Kind `json:"kind"`
	Message string       `json:"message"`
}

func (a *app) client(args []string) (bool, error) {
	if len(args) == 0 {
		return false, usagef("client takes the raw error message")
	}
	out := clientOutput{Kind: message.KindClientRuntimeError, Message: a.resolver.Client(strings.Join(args, " "))}
	return true, a.print(out.Message, out)
}
