// Package errors provides structured error types for the doldoc decoder.
//
// Errors are categorized by Phase (which decoding layer failed) and Kind
// (error category), and always carry the byte offset the failure occurred
// at, matching the legacy reader's convention of reporting stream position.
// Where the failing opcode is known the error carries its value and
// display name too.
//
// Use the convenience constructors:
//
//	err := errors.UnknownOpcode(0x42, 17)
//	err := errors.UnexpectedEOF(errors.PhaseStream, 0, "expected opcode")
//
// All errors implement the standard error interface; errors.Is matches on
// Phase and Kind so callers can probe for a category:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseStream, Kind: errors.KindUnknownOpcode})
package errors
