package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Type categorizes an error raised while parsing or evaluating a filter
// expression.
type Type string

const (
	TypeBlank      Type = "blank"      // empty or whitespace-only expression
	TypeLexical    Type = "lexical"    // illegal character or malformed identifier
	TypeSyntax     Type = "syntax"     // forbidden token adjacency or boundary
	TypeBracket    Type = "bracket"    // unmatched '(' or ')'
	TypeTree       Type = "tree"       // operand stack malformed (defensive)
	TypeUnresolved Type = "unresolved" // identifier unknown to the Context
)

// Error is a rich parse or evaluation error carrying the source
// expression, the 0-based offset of the offending character or token,
// and an optional suggested fix.
type Error struct {
	Type       Type
	Message    string
	Expression string // original expression, for caret context
	Pos        int    // byte offset into Expression; -1 when not applicable
	Suggestion string // suggested fix (optional)
}

// New creates an error without positional information.
func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message, Pos: -1}
}

// Newf creates an error at the given offset with a formatted message.
func Newf(t Type, pos int, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// WithExpression attaches the source expression so Error can render a
// caret pointing at the offending offset.
func (e *Error) WithExpression(expr string) *Error {
	e.Expression = expr
	return e
}

// Error implements the error interface. It returns a formatted message
// with the source expression and a caret marking the error offset.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	if e.Expression != "" && e.Pos >= 0 && e.Pos <= len(e.Expression) {
		sb.WriteString(fmt.Sprintf("\n  --> %s\n", e.Expression))
		sb.WriteString(fmt.Sprintf("      %s^", strings.Repeat(" ", e.Pos)))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// IsType reports whether err is (or wraps) an *Error of the given type.
func IsType(err error, t Type) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Type == t
}

// PosOf returns the offset carried by err, or -1 if err carries none.
func PosOf(err error) int {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Pos
	}
	return -1
}
