package dice

import "fmt"

// SyntaxError is returned when the source does not match the dice notation
// grammar, whether the failure was found while scanning or while parsing.
type SyntaxError struct {
	Col     int
	Lexeme  string
	Message string
}

// NewSyntaxError creates an error pointing at the offending lexeme. An empty
// lexeme points at the end of the source.
func NewSyntaxError(col int, lexeme string, message string) error {
	return &SyntaxError{col, lexeme, message}
}

func (err *SyntaxError) Error() string {
	if err.Lexeme == "" {
		return fmt.Sprintf(
			"[col %d] Error at end: %s",
			err.Col,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.Col,
		err.Lexeme,
		err.Message,
	)
}

// UnboundVariableError is returned when an expression references a name that
// was never assigned during the session.
type UnboundVariableError struct {
	Col  int
	Name string
}

// NewUnboundVariableError creates an error for the given name token
func NewUnboundVariableError(name *Token) error {
	return &UnboundVariableError{name.Col, name.Lexeme}
}

func (err *UnboundVariableError) Error() string {
	return fmt.Sprintf(
		"[col %d] Error: Undefined variable '%s'.",
		err.Col,
		err.Name,
	)
}

// EvalError is returned when an expression parses but its value cannot be
// computed, such as a division by zero.
type EvalError struct {
	Col     int
	Lexeme  string
	Message string
}

// NewEvalError creates an error at the operator that failed
func NewEvalError(op *Token, message string) error {
	return &EvalError{op.Col, op.Lexeme, message}
}

func (err *EvalError) Error() string {
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.Col,
		err.Lexeme,
		err.Message,
	)
}
