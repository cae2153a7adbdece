package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// evaluator runs the semantic action of each grammar production the moment
// the parser reduces it, producing a Result without building a syntax tree.
type evaluator struct {
	environment *Environment
	roller      *Roller
}

func newEvaluator(environment *Environment, roller *Roller) *evaluator {
	return &evaluator{environment, roller}
}

func (ev *evaluator) number(tok *Token) Result {
	value := tok.Literal.(int)
	return Result{value, strconv.Itoa(value)}
}

func (ev *evaluator) add(lhs, rhs Result) Result {
	return Result{lhs.Value + rhs.Value, fmt.Sprintf("%s + %s", lhs.Text, rhs.Text)}
}

func (ev *evaluator) sub(lhs, rhs Result) Result {
	return Result{lhs.Value - rhs.Value, fmt.Sprintf("%s - %s", lhs.Text, rhs.Text)}
}

func (ev *evaluator) mul(lhs, rhs Result) Result {
	return Result{lhs.Value * rhs.Value, fmt.Sprintf("%s * %s", lhs.Text, rhs.Text)}
}

// div floors toward negative infinity, not toward zero like Go's integer
// division.
func (ev *evaluator) div(op *Token, lhs, rhs Result) (Result, error) {
	if rhs.Value == 0 {
		return Result{}, NewEvalError(op, "Division by zero.")
	}
	quo := lhs.Value / rhs.Value
	if lhs.Value%rhs.Value != 0 && (lhs.Value < 0) != (rhs.Value < 0) {
		quo--
	}
	return Result{quo, fmt.Sprintf("%s / %s", lhs.Text, rhs.Text)}, nil
}

func (ev *evaluator) neg(val Result) Result {
	return Result{-val.Value, "-" + val.Text}
}

func (ev *evaluator) brackets(val Result) Result {
	return Result{val.Value, "(" + val.Text + ")"}
}

// assign binds the name to the value of the right-hand side. Later
// references substitute the bare name, not the outcomes it was rolled from.
func (ev *evaluator) assign(name *Token, val Result) Result {
	ev.environment.Define(name.Lexeme, Result{val.Value, name.Lexeme})
	return Result{val.Value, fmt.Sprintf("%s = %s", name.Lexeme, val.Text)}
}

func (ev *evaluator) variable(name *Token) (Result, error) {
	return ev.environment.Get(name)
}

const (
	partCount partRole = iota
	partSize
	partKeep
)

// partRole tells the roll assembly which slot of the dice production a part
// fills, keeping the roles out of the general expression results.
type partRole uint8

type rollPart struct {
	role partRole
	num  int
	keep Modifier
}

func (ev *evaluator) diceCount(val Result) rollPart {
	return rollPart{role: partCount, num: val.Value}
}

// diceSize clamps sizes below one to zero; a zero-faced die always lands on
// zero.
func (ev *evaluator) diceSize(val Result) rollPart {
	size := val.Value
	if size < 1 {
		size = 0
	}
	return rollPart{role: partSize, num: size}
}

func (ev *evaluator) diceHighest(val Result) rollPart {
	return rollPart{role: partKeep, keep: KeepHighest{val.Value}}
}

func (ev *evaluator) diceLowest(val Result) rollPart {
	return rollPart{role: partKeep, keep: KeepLowest{val.Value}}
}

// roll fills the slots the dice production left out with the defaults (one
// die, twenty faces, keep everything) and draws the outcomes. The text lists
// every outcome in generation order, dropped ones included.
func (ev *evaluator) roll(parts []rollPart) Result {
	count, size := 1, 20
	var keep Modifier = KeepAll{}
	for _, part := range parts {
		switch part.role {
		case partCount:
			count = part.num
		case partSize:
			size = part.num
		case partKeep:
			keep = part.keep
		}
	}
	total, outcomes := ev.roller.Roll(count, size, keep)
	shown := make([]string, len(outcomes))
	for i, outcome := range outcomes {
		shown[i] = strconv.Itoa(outcome)
	}
	return Result{total, "[" + strings.Join(shown, ", ") + "]"}
}
