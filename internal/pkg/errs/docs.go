// Package errs holds the typed validation and lookup errors shared by the
// domain, the use cases and the adapters.
//
// Every type unwraps to one sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound), which is what callers match with
// errors.Is. The HTTP adapter maps the sentinels to status codes.
package errs
