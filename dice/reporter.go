package dice

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structures that can display errors to
// the user. A reporter is defined to separate error detecting code from
// error displaying code; the evaluator only ever hands errors back as
// values.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes errors as-is to the inner writer
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false, false}
}

// Report prints the error and remembers whether it was found while reading
// the source or while evaluating it.
func (reporter *SimpleReporter) Report(err error) {
	if isRuntime(err) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// Reset clears the flags between evaluations
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

// isRuntime classifies an error as one raised while evaluating instead of
// while scanning or parsing.
func isRuntime(err error) bool {
	var unbound *UnboundVariableError
	var eval *EvalError
	return errors.As(err, &unbound) || errors.As(err, &eval)
}
