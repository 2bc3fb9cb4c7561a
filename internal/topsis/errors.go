package topsis

import "fmt"

// UsageError reports a malformed command-line invocation.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// SchemaError reports a decision table that fails structural checks.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return e.Msg }

// InputError reports a malformed weight or impact argument.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// ComputationError reports a degenerate numeric case inside the engine.
type ComputationError struct {
	Msg string
}

func (e *ComputationError) Error() string { return e.Msg }

// FileAccessError reports an input or output file that could not be used.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string { return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err) }

// Unwrap exposes the underlying filesystem error.
func (e *FileAccessError) Unwrap() error { return e.Err }

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

func computationErrorf(format string, args ...any) *ComputationError {
	return &ComputationError{Msg: fmt.Sprintf(format, args...)}
}
