// Package validator provides the pure rule functions behind the storefront forms:
// price entry, password confirmation, the standard presence/length/format rules,
// and presets for the login, registration and profile screens.
//
// A Rule is a function that inspects a candidate value (and, for cross-field
// rules, a sibling value) and reports zero or more ValidationError values.
// Rules never panic and hold no state, so evaluating a rule twice with the
// same input yields the same result.
//
// # Errors
//
// Every ValidationError carries:
//   - Kind – the closed category (required, invalid_format, below_minimum, ...)
//   - Code – the rule that fired (email, min_price, mismatch, ...)
//   - Message – a precomputed English message
//   - TranslationKey / TranslationValues – data for localized rendering
//
// ValidationErrors is an ordered slice that satisfies error; the empty slice
// means valid. Use ForField to get the error set of one field and the message
// package to turn a set into display text.
//
// # Usage
//
//	errs := validator.Collect(
//	    validator.Required("price", input),
//	    validator.Price("price", input, validator.WithMaxPrice(10000)),
//	)
//	if !errs.IsEmpty() {
//	    // render message.Field(errs.ForField("price"), "price")
//	}
//
// Price checks short-circuit: only the first failing check is reported. Rules
// collected with Collect or Apply are independent, so a field may carry errors
// from several rules at once.
package validator
