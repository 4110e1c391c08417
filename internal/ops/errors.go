package ops

import "fmt"

// Kind classifies operation failures so the caller can render a meaningful
// message without inspecting the wrapped error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindFileNotFound
	KindFormat
	KindInvalidArgument
	KindOutputNotCreated
	KindExternalTool
)

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "FILE_NOT_FOUND"
	case KindFormat:
		return "FORMAT_ERROR"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindOutputNotCreated:
		return "OUTPUT_NOT_CREATED"
	case KindExternalTool:
		return "EXTERNAL_TOOL_FAILURE"
	default:
		return "UNEXPECTED"
	}
}

// OpError is the single error type operations return. Every operation catches
// failures at its own boundary and wraps them with the operation name and,
// where meaningful, the offending path.
type OpError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(kind Kind, op, path string, err error) *OpError {
	return &OpError{Kind: kind, Op: op, Path: path, Err: err}
}

func opErrf(kind Kind, op, path, format string, args ...any) *OpError {
	return &OpError{Kind: kind, Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}
