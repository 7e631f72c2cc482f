package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultMinPrice is the smallest accepted price when no minimum is given.
	DefaultMinPrice = 0.01
	// DefaultMaxDecimals is the number of fraction digits a price may carry.
	DefaultMaxDecimals = 2
)

// decimalLiteral matches a signed decimal with an optional fraction and
// exponent, or a signed Infinity. Hex floats, underscores and "inf" are not
// prices.
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|Infinity)$`)

type priceConfig struct {
	min         float64
	max         float64
	hasMax      bool
	maxDecimals int
}

// PriceOption configures the Price rule.
type PriceOption func(*priceConfig)

// WithMinPrice sets the inclusive lower bound.
func WithMinPrice(min float64) PriceOption {
	return func(c *priceConfig) { c.min = min }
}

// WithMaxPrice sets the inclusive upper bound. Without it prices are unbounded.
func WithMaxPrice(max float64) PriceOption {
	return func(c *priceConfig) {
		c.max = max
		c.hasMax = true
	}
}

// WithMaxDecimals sets how many digits may follow the decimal point.
func WithMaxDecimals(n int) PriceOption {
	return func(c *priceConfig) { c.maxDecimals = n }
}

// Price validates a textual price. Empty values pass. Checks run in a fixed
// order and only the first failure is reported: number format, minimum,
// maximum, decimal places, negative zero.
//
// Example:
//
//	errs := validator.Price("price", "12.345", validator.WithMaxPrice(100))()
//	// errs[0].Code == validator.CodeMaxDecimals
func Price(field, value string, opts ...PriceOption) Rule {
	cfg := priceConfig{min: DefaultMinPrice, maxDecimals: DefaultMaxDecimals}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func() ValidationErrors {
		if value == "" {
			return nil
		}

		num, ok := parsePrice(value)
		if !ok {
			return ValidationErrors{invalidPrice(field, value, "Price must be a valid number", "validation.price.invalid")}
		}

		if num < cfg.min {
			return ValidationErrors{{
				Field:          field,
				Kind:           KindBelowMinimum,
				Code:           CodeMinPrice,
				Message:        fmt.Sprintf("Price must be at least €%.2f", cfg.min),
				TranslationKey: "validation.price.min",
				TranslationValues: map[string]any{
					"min":    cfg.min,
					"actual": num,
				},
			}}
		}

		if cfg.hasMax && num > cfg.max {
			return ValidationErrors{{
				Field:          field,
				Kind:           KindAboveMaximum,
				Code:           CodeMaxPrice,
				Message:        fmt.Sprintf("Price cannot exceed €%.2f", cfg.max),
				TranslationKey: "validation.price.max",
				TranslationValues: map[string]any{
					"max":    cfg.max,
					"actual": num,
				},
			}}
		}

		if digits := decimalDigits(value); digits > cfg.maxDecimals {
			return ValidationErrors{{
				Field:          field,
				Kind:           KindTooManyDecimals,
				Code:           CodeMaxDecimals,
				Message:        fmt.Sprintf("Price can have maximum %d decimal places", cfg.maxDecimals),
				TranslationKey: "validation.price.max_decimals",
				TranslationValues: map[string]any{
					"maxDecimals": cfg.maxDecimals,
					"actual":      digits,
				},
			}}
		}

		// Only reachable when the minimum allows zero.
		if num == 0 && math.Signbit(num) {
			return ValidationErrors{invalidPrice(field, value, "Price cannot be negative", "validation.price.negative")}
		}

		return nil
	}
}

// PriceNum validates a numeric price. The number is rendered in its shortest
// decimal form before the decimal places check.
func PriceNum(field string, value float64, opts ...PriceOption) Rule {
	switch {
	case math.IsNaN(value):
		return Price(field, "NaN", opts...)
	case math.IsInf(value, 1):
		return Price(field, "Infinity", opts...)
	case math.IsInf(value, -1):
		return Price(field, "-Infinity", opts...)
	}
	return Price(field, strconv.FormatFloat(value, 'f', -1, 64), opts...)
}

func invalidPrice(field, value, message, key string) ValidationError {
	return ValidationError{
		Field:          field,
		Kind:           KindInvalidFormat,
		Code:           CodeInvalidPrice,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"actual": value,
		},
	}
}

// parsePrice converts text to a number. Surrounding whitespace is ignored and
// blank text is zero. Anything other than a decimal literal is not a number.
func parsePrice(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, true
	}
	if !decimalLiteral.MatchString(trimmed) {
		return 0, false
	}

	num, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return num, true
}

// decimalDigits counts the characters between the first and second '.' of the
// raw text.
func decimalDigits(value string) int {
	parts := strings.Split(value, ".")
	if len(parts) < 2 {
		return 0
	}
	return len(parts[1])
}
