package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/oafilali/buy01/pkg/config"
	"github.com/oafilali/buy01/pkg/i18n"
	"github.com/oafilali/buy01/pkg/logger"
	"github.com/oafilali/buy01/pkg/message"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage error")

// appConfig is read from the environment; flags override it.
type appConfig struct {
	Lang string `env:"BUY01_LANG" envDefault:"en"`
}

type app struct {
	stdout   io.Writer
	log      *slog.Logger
	resolver *message.Resolver
	json     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	logOpts, err := logger.FromConfig(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return exitUsage
	}
	// Logs go to stderr at warn unless LOG_LEVEL says otherwise.
	if logCfg.Level == "" {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelWarn))
	}
	log := logger.New(append(logOpts, logger.WithOutput(stderr))...).With(logger.Component("buy01check"))

	fs := flag.NewFlagSet("buy01check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print structured output")
	lang := fs.String("lang", cfg.Lang, "message language (tag or Accept-Language value)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: buy01check [-json] [-lang tag] <price|file|http|client> [args]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	tr, err := message.NewCatalog(ctx, i18n.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to load message catalog", logger.Error(err))
		return exitUsage
	}
	matched := tr.Match(*lang)
	log.DebugContext(ctx, "resolved language", logger.Lang(matched))

	a := &app{
		stdout:   stdout,
		log:      log,
		resolver: message.NewResolver(message.WithTranslator(tr, matched)),
		json:     *asJSON,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	var valid bool
	switch cmd {
	case "price":
		valid, err = a.price(rest, stderr)
	case "file":
		valid, err = a.file(rest, stderr)
	case "http":
		valid, err = a.http(rest, stderr)
	case "client":
		valid, err = a.client(rest)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp):
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	case err != nil:
		log.ErrorContext(ctx, "command failed", slog.String("command", cmd), logger.Error(err))
		return exitUsage
	case !valid:
		return exitInvalid
	default:
		return exitOK
	}
}

// print writes text as a line, or v as indented JSON in -json mode.
func (a *app) print(text string, v any) error {
	if !a.json {
		_, err := fmt.Fprintln(a.stdout, text)
		return err
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func subcommand(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("buy01check "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
