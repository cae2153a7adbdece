package dice

import (
	"strconv"
	"unicode"
)

const (
	// diceNone means no die operator is pending.
	diceNone diceState = iota
	// diceHead means a die operator was scanned and its size atom has not
	// started or is an open chain of unary minuses.
	diceHead
	// diceTail means the die size atom just completed, which is the one
	// position where a lowercase 'h' or 'l' reads as a keep modifier.
	diceTail
)

// diceState tracks how far into a die the scanner is. The letters 'd', 'h',
// and 'l' are also valid name characters, so whether they act as operators
// depends on where in a die they appear.
type diceState uint8

// scanner reads a line of dice notation and collects all the tokens that can
// be found in it.
type scanner struct {
	start   int
	current int
	prev    TokenType
	state   diceState
	stack   []diceState
	source  []rune
	tokens  []*Token
}

func newScanner(source string) *scanner {
	return &scanner{
		start:   0,
		current: 0,
		prev:    EOF,
		state:   diceNone,
		source:  []rune(source),
		tokens:  make([]*Token, 0),
	}
}

// scan reads the source and collects all the tokens that were found in it,
// stopping at the first character that fits nowhere.
func (scanner *scanner) scan() ([]*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '*':
			scanner.addToken(STAR, nil)
		case '/':
			scanner.addToken(SLASH, nil)
		case '=':
			scanner.addToken(EQUAL, nil)
		// Uppercase die operators are never part of a name
		case 'D':
			scanner.addToken(DIE, nil)
		case 'H':
			scanner.addToken(HIGHEST, nil)
		case 'L':
			scanner.addToken(LOWEST, nil)
		default:
			if unicode.IsDigit(r) {
				if err := scanner.scanNumber(); err != nil {
					return nil, err
				}
			} else if isWordRune(r) {
				scanner.scanWord()
			} else {
				return nil, NewSyntaxError(
					scanner.start+1, string(r), "Unexpected character.",
				)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.current+1),
	)
	return scanner.tokens, nil
}

func (scanner *scanner) scanNumber() error {
	// go through continuous digits
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, err := strconv.Atoi(lexeme)
	if err != nil {
		return NewSyntaxError(
			scanner.start+1, lexeme, "Number literal out of range.",
		)
	}
	scanner.addToken(NUMBER, literal)
	return nil
}

// scanWord reads a run of name characters and decides whether it begins an
// operator or is a whole NAME.
func (scanner *scanner) scanWord() {
	for isWordRune(scanner.peek()) {
		scanner.advance()
	}
	word := string(scanner.source[scanner.start:scanner.current])
	switch {
	case scanner.afterOperand():
		switch {
		case scanner.state == diceTail && (word[0] == 'h' || word[0] == 'l'):
			// the die size just ended, so the letter is a keep modifier and
			// the rest of the run rescans as the modifier's argument
			scanner.current = scanner.start + 1
			if word[0] == 'h' {
				scanner.addToken(HIGHEST, nil)
			} else {
				scanner.addToken(LOWEST, nil)
			}
		case word[0] == 'd':
			// only the 'd' is the operator, the rest of the run rescans as
			// the die size
			scanner.current = scanner.start + 1
			scanner.addToken(DIE, nil)
		default:
			scanner.addToken(NAME, nil)
		}
	case scanner.prev == DIE && (word == "h" || word == "l"):
		// a lone letter right after the die operator is a keep modifier; a
		// longer run is a variable naming the die size
		if word == "h" {
			scanner.addToken(HIGHEST, nil)
		} else {
			scanner.addToken(LOWEST, nil)
		}
	default:
		if word == "d" {
			scanner.addToken(DIE, nil)
		} else {
			scanner.addToken(NAME, nil)
		}
	}
}

// afterOperand returns true if the previous token ended an operand, which is
// the only position where a lowercase 'd' must be read as a die operator.
func (scanner *scanner) afterOperand() bool {
	switch scanner.prev {
	case NUMBER, NAME, RIGHT_PAREN:
		return true
	}
	return false
}

// transition advances the dice automaton. Parentheses save and restore the
// state so a die whose size is a bracketed expression still ends in
// diceTail, while dice nested inside the brackets track their own state.
func (scanner *scanner) transition(typ TokenType) {
	switch typ {
	case LEFT_PAREN:
		scanner.stack = append(scanner.stack, scanner.state)
		scanner.state = diceNone
		return
	case RIGHT_PAREN:
		restored := diceNone
		if n := len(scanner.stack); n > 0 {
			restored = scanner.stack[n-1]
			scanner.stack = scanner.stack[:n-1]
		}
		if restored == diceHead {
			scanner.state = diceTail
		} else {
			scanner.state = diceNone
		}
		return
	case DIE:
		scanner.state = diceHead
		return
	}
	switch scanner.state {
	case diceHead:
		switch typ {
		case MINUS:
			// unary minus, the size atom is still open
		case NUMBER, NAME:
			scanner.state = diceTail
		default:
			scanner.state = diceNone
		}
	case diceTail:
		scanner.state = diceNone
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type, tagged with the column where the lexeme starts.
func (scanner *scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.start+1)
	scanner.tokens = append(scanner.tokens, tok)
	scanner.prev = typ
	scanner.transition(typ)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == '_'
}
