// Package core implements the StayHere webhook client: configuration, the
// request pipeline, management and invocation operations, payload builders and
// the error taxonomy. Failures are *goerrors.Error values discriminated by
// TextCode, see KindOf.
package core
