// Package message turns validation errors and request failures into text a
// user can act on.
//
// Field picks one message for a field's error set using a fixed priority
// (required, email, length, range, pattern, then price and match rules), so
// a form shows the most basic problem first. HTTP maps a normalized Failure
// to a status-specific message, letting the server's own message through for
// 400, 404, 409, 422 and other 4xx codes. Client maps an arbitrary error
// string by keyword. Raw error text never reaches the user.
//
// The network layer builds Failures with FailureFromResponse and
// FailureFromError; Classify and KindOf expose the transport taxonomy.
//
// Package-level functions resolve in built-in English. A Resolver created
// with WithTranslator localizes through any Translator, typically the
// bundled catalog:
//
//	tr, err := message.NewCatalog(ctx)
//	if err != nil {
//	    return err
//	}
//	r := message.NewResolver(message.WithTranslator(tr, tr.Match(acceptLanguage)))
//	text := r.Error(err)
package message
