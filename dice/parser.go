package dice

// parser matches the token sequence against the grammar rules listed in the
// package documentation. There is no syntax tree; the semantic action of a
// production runs as soon as the production reduces, so parsing a valid
// expression directly yields its Result.
type parser struct {
	current   int
	tokens    []*Token
	evaluator *evaluator
}

func newParser(tokens []*Token, evaluator *evaluator) *parser {
	return &parser{0, tokens, evaluator}
}

// parse matches the start production. Tokens left over after it reduces are
// a syntax error; the assignment action only runs once the whole line is
// known to be valid, a rejected line must not bind its variable.
//
//	start --> sum | NAME "=" sum ;
func (parser *parser) parse() (Result, error) {
	if parser.check(NAME) && parser.checkNext(EQUAL) {
		name := parser.advance()
		parser.advance()
		rhs, err := parser.sum()
		if err != nil {
			return Result{}, err
		}
		if err := parser.expectEnd(); err != nil {
			return Result{}, err
		}
		return parser.evaluator.assign(name, rhs), nil
	}
	result, err := parser.sum()
	if err != nil {
		return Result{}, err
	}
	if err := parser.expectEnd(); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (parser *parser) expectEnd() error {
	if parser.isEOF() {
		return nil
	}
	tok := parser.peek()
	return NewSyntaxError(tok.Col, tok.Lexeme, "Expect end of expression.")
}

// sum --> product ( ( "+" | "-" ) product )* ;
func (parser *parser) sum() (Result, error) {
	result, err := parser.product()
	if err != nil {
		return Result{}, err
	}
	for parser.match(PLUS, MINUS) {
		op := parser.prev()
		rhs, err := parser.product()
		if err != nil {
			return Result{}, err
		}
		if op.Typ == PLUS {
			result = parser.evaluator.add(result, rhs)
		} else {
			result = parser.evaluator.sub(result, rhs)
		}
	}
	return result, nil
}

// product --> dice ( ( "*" | "/" ) dice )* ;
func (parser *parser) product() (Result, error) {
	result, err := parser.dice()
	if err != nil {
		return Result{}, err
	}
	for parser.match(STAR, SLASH) {
		op := parser.prev()
		rhs, err := parser.dice()
		if err != nil {
			return Result{}, err
		}
		if op.Typ == STAR {
			result = parser.evaluator.mul(result, rhs)
		} else {
			result, err = parser.evaluator.div(op, result, rhs)
			if err != nil {
				return Result{}, err
			}
		}
	}
	return result, nil
}

// A leading atom is either the whole term or the roll count, which one it is
// only shows once the next token is known.
//
//	dice --> atom | count? ( "d" | "D" ) size? modifier? ;
//	count --> atom ;
//	size --> atom ;
//	modifier --> ( "h" | "H" ) atom | ( "l" | "L" ) atom ;
func (parser *parser) dice() (Result, error) {
	var parts []rollPart
	if !parser.check(DIE) {
		atom, err := parser.atom()
		if err != nil {
			return Result{}, err
		}
		if !parser.check(DIE) {
			return atom, nil
		}
		parts = append(parts, parser.evaluator.diceCount(atom))
	}
	parser.advance()
	if parser.checkAtom() {
		size, err := parser.atom()
		if err != nil {
			return Result{}, err
		}
		parts = append(parts, parser.evaluator.diceSize(size))
	}
	if parser.match(HIGHEST, LOWEST) {
		op := parser.prev()
		n, err := parser.atom()
		if err != nil {
			return Result{}, err
		}
		if op.Typ == HIGHEST {
			parts = append(parts, parser.evaluator.diceHighest(n))
		} else {
			parts = append(parts, parser.evaluator.diceLowest(n))
		}
	}
	return parser.evaluator.roll(parts), nil
}

// atom --> NUMBER | "-" atom | NAME | "(" sum ")" ;
func (parser *parser) atom() (Result, error) {
	if parser.match(NUMBER) {
		return parser.evaluator.number(parser.prev()), nil
	}
	if parser.match(MINUS) {
		val, err := parser.atom()
		if err != nil {
			return Result{}, err
		}
		return parser.evaluator.neg(val), nil
	}
	if parser.match(NAME) {
		return parser.evaluator.variable(parser.prev())
	}
	if parser.match(LEFT_PAREN) {
		val, err := parser.sum()
		if err != nil {
			return Result{}, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return Result{}, err
		}
		return parser.evaluator.brackets(val), nil
	}
	tok := parser.peek()
	return Result{}, NewSyntaxError(tok.Col, tok.Lexeme, "Expect expression.")
}

// checkAtom returns true when the current token can start an atom
func (parser *parser) checkAtom() bool {
	switch parser.peek().Typ {
	case NUMBER, MINUS, NAME, LEFT_PAREN:
		return true
	}
	return false
}

func (parser *parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	tok := parser.peek()
	return NewSyntaxError(tok.Col, tok.Lexeme, message)
}

func (parser *parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *parser) checkNext(tt TokenType) bool {
	if parser.current+1 >= len(parser.tokens) {
		return false
	}
	return parser.tokens[parser.current+1].Typ == tt
}

func (parser *parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
