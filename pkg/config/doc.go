// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is read once if present, extra files can be
// requested per call, and struct fields are filled from `env` tags.
// Parsed values are cached per type (and prefix) for the lifetime of the
// process; Reset clears the cache.
//
// # Usage
//
//	type Limits struct {
//	    AvatarMaxBytes int64 `env:"UPLOAD_AVATAR_MAX_BYTES" envDefault:"2097152"`
//	}
//
//	var limits Limits
//	if err := config.Load(&limits); err != nil {
//	    return err
//	}
//
// The same struct can be loaded under a prefix, for example per tenant or per
// deployment slot:
//
//	var staging Limits
//	err := config.Load(&staging, config.WithPrefix("STAGING_"))
//
// # Error Handling
//
// Errors are joined with a package sentinel so callers can test them:
//
//	if errors.Is(err, config.ErrParsingConfig) {
//	    // missing required variable or malformed value
//	}
package config
