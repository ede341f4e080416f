// Package failure defines the structured errors surfaced by the comparison engine,
// the format decoders and the HTTP/CLI boundaries.
//
// Every failure carries a Kind so callers can react without string matching:
//
//	if errors.Is(err, failure.ErrParse) {
//	    // malformed input
//	}
//
// Kinds map onto HTTP status codes in the handlers (see StatusCode).
package failure
