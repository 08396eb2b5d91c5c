// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// validation, timeout) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped errors support inspection with errors.Is() and errors.As().
//
// Arithmetic overflow is deliberately not an application error: the core
// library reports it as sequence exhaustion (or the fibext.ErrOverflow
// sentinel from the buffer filler), since for finite-width element types it
// is an ordinary end-of-sequence condition.
package apperrors
