package geometry

import "fmt"

// ErrorKind classifies a geometry failure.
type ErrorKind int

const (
	// InvalidArgument covers malformed input: zero vectors where a direction
	// or normal is required, non-finite components, out-of-range parameters.
	InvalidArgument ErrorKind = iota + 1
	// Degenerate covers linear systems whose determinant is near zero.
	Degenerate
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case Degenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every failing geometry operation.
type Error struct {
	Kind    ErrorKind
	Op      string // operation that failed, e.g. "line_intersection"
	Operand string // offending input, e.g. "line1.direction"; may be empty
	Reason  string
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrDegenerate      = &Error{Kind: Degenerate}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Operand != "" {
		msg += ": " + e.Operand
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target is a kind sentinel matching e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Operand == "" && t.Reason == "" && t.Kind == e.Kind
}

func invalidArg(op, operand, reason string) error {
	return &Error{Kind: InvalidArgument, Op: op, Operand: operand, Reason: reason}
}

func degenerate(op, operand, reason string) error {
	return &Error{Kind: Degenerate, Op: op, Operand: operand, Reason: reason}
}

// withOp fills in the operation name on a geometry error that lacks one.
func withOp(err error, op string) error {
	if e, ok := err.(*Error); ok && e.Op == "" {
		c := *e
		c.Op = op
		return &c
	}
	return err
}
