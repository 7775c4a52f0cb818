package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which decoding layer produced the error.
type Phase string

const (
	PhaseContainer Phase = "container" // preamble and chunk framing
	PhaseStream    Phase = "stream"    // element stream dispatch
	PhaseElement   Phase = "element"   // per-kind payload decoding
)

// Kind categorizes the error.
type Kind string

const (
	KindUnexpectedEOF Kind = "unexpected_eof" // stream ended before a required byte
	KindUnknownOpcode Kind = "unknown_opcode" // opcode outside the table range
	KindUnimplemented Kind = "unimplemented_decoder"
	KindTruncated     Kind = "truncated_payload" // payload shorter than declared
	KindTrailingData  Kind = "trailing_data"     // strict size policy mismatch
)

// Error is the structured error type used throughout the decoder. Every
// decode error carries the byte offset it occurred at and, where known,
// the opcode value and display name.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Name   string
	Detail string
	Offset int
	Opcode byte
	HasOp  bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HasOp {
		fmt.Fprintf(&b, " opcode 0x%02X", e.Opcode)
	}
	if e.Name != "" {
		fmt.Fprintf(&b, " (%s)", e.Name)
	}
	fmt.Fprintf(&b, " at offset %d", e.Offset)

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match on
// Phase and Kind, so callers can probe categories with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the decode error taxonomy.

// UnexpectedEOF reports that the stream ended before a required byte.
func UnexpectedEOF(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnexpectedEOF,
		Offset: offset,
		Detail: detail,
	}
}

// UnknownOpcode reports an opcode byte outside the table range.
func UnknownOpcode(opcode byte, offset int) *Error {
	return &Error{
		Phase:  PhaseStream,
		Kind:   KindUnknownOpcode,
		Offset: offset,
		Opcode: opcode,
		HasOp:  true,
		Detail: "no such entry in the opcode table",
	}
}

// Unimplemented reports a recognized opcode with no registered decoder.
func Unimplemented(opcode byte, name string, offset int) *Error {
	return &Error{
		Phase:  PhaseStream,
		Kind:   KindUnimplemented,
		Offset: offset,
		Opcode: opcode,
		HasOp:  true,
		Name:   name,
		Detail: "no decoder registered for this element kind",
	}
}

// Truncated reports a chunk payload shorter than its declared size.
func Truncated(offset int, declared, remaining uint32) *Error {
	return &Error{
		Phase:  PhaseContainer,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("declared payload size %d but only %d bytes remain", declared, remaining),
	}
}

// TrailingData reports a strict size-policy mismatch: the element stream
// ended before consuming the declared payload size.
func TrailingData(offset int, declared uint32, consumed int) *Error {
	return &Error{
		Phase:  PhaseContainer,
		Kind:   KindTrailingData,
		Offset: offset,
		Detail: fmt.Sprintf("element stream consumed %d of %d declared payload bytes", consumed, declared),
	}
}

// Wrap attaches element context to a lower-level read failure.
func Wrap(phase Phase, kind Kind, opcode byte, name string, offset int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: offset,
		Opcode: opcode,
		HasOp:  true,
		Name:   name,
		Cause:  cause,
	}
}
