package dice

import "time"

// Session evaluates dice notation while keeping the bound variables and the
// random stream shared between evaluations. A session is not safe for
// concurrent use; create one session per goroutine.
type Session struct {
	evaluator *evaluator
}

// NewSession creates a session whose rolls are seeded by the current time.
func NewSession() *Session {
	return NewSessionWithRoller(nil)
}

// NewSessionWithRoller creates a session that draws outcomes from the given
// roller, so callers seeding the roller themselves can replay every roll. A
// nil roller falls back to the time-seeded default.
func NewSessionWithRoller(roller *Roller) *Session {
	if roller == nil {
		roller = NewRollerFromSeed(time.Now().UnixNano())
	}
	return &Session{newEvaluator(NewEnvironment(), roller)}
}

// Eval scans and parses one expression, returning its value along with the
// text retracing every die outcome. Variables assigned here stay visible to
// later calls on the same session. On failure the zero Result is returned
// with the error and no variable is bound.
func (session *Session) Eval(source string) (Result, error) {
	tokens, err := newScanner(source).scan()
	if err != nil {
		return Result{}, err
	}
	return newParser(tokens, session.evaluator).parse()
}

// Eval evaluates one expression in a throwaway time-seeded session.
func Eval(source string) (Result, error) {
	return NewSession().Eval(source)
}
