package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// single character tokens
		{"(", []*Token{{LEFT_PAREN, "(", nil, 1}, tokEOF(2)}},
		{")", []*Token{{RIGHT_PAREN, ")", nil, 1}, tokEOF(2)}},
		{"+", []*Token{{PLUS, "+", nil, 1}, tokEOF(2)}},
		{"-", []*Token{{MINUS, "-", nil, 1}, tokEOF(2)}},
		{"*", []*Token{{STAR, "*", nil, 1}, tokEOF(2)}},
		{"/", []*Token{{SLASH, "/", nil, 1}, tokEOF(2)}},
		{"=", []*Token{{EQUAL, "=", nil, 1}, tokEOF(2)}},
		// uppercase dice operators
		{"D", []*Token{{DIE, "D", nil, 1}, tokEOF(2)}},
		{"H", []*Token{{HIGHEST, "H", nil, 1}, tokEOF(2)}},
		{"L", []*Token{{LOWEST, "L", nil, 1}, tokEOF(2)}},
		// a lone lowercase d is a die, other lowercase runs are names
		{"d", []*Token{{DIE, "d", nil, 1}, tokEOF(2)}},
		{"h", []*Token{{NAME, "h", nil, 1}, tokEOF(2)}},
		{"l", []*Token{{NAME, "l", nil, 1}, tokEOF(2)}},
		{"x", []*Token{{NAME, "x", nil, 1}, tokEOF(2)}},
		{"_", []*Token{{NAME, "_", nil, 1}, tokEOF(2)}},
		{"dex", []*Token{{NAME, "dex", nil, 1}, tokEOF(4)}},
		{"hp", []*Token{{NAME, "hp", nil, 1}, tokEOF(3)}},
		{"dog", []*Token{{NAME, "dog", nil, 1}, tokEOF(4)}},
		// numbers
		{"0", []*Token{{NUMBER, "0", 0, 1}, tokEOF(2)}},
		{"10", []*Token{{NUMBER, "10", 10, 1}, tokEOF(3)}},
		{"007", []*Token{{NUMBER, "007", 7, 1}, tokEOF(4)}},
		{"", []*Token{tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := newScanner(tc.src).scan()

		assert.NoError(err)
		assert.Equal(tc.toks, toks)
	}
}

func TestScanDieOperatorContext(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"2d6", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NUMBER, "6", 6, 3}, tokEOF(4),
		}},
		{"2D6", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "D", nil, 2}, {NUMBER, "6", 6, 3}, tokEOF(4),
		}},
		{"d6", []*Token{
			{DIE, "d", nil, 1}, {NUMBER, "6", 6, 2}, tokEOF(3),
		}},
		{"3d", []*Token{
			{NUMBER, "3", 3, 1}, {DIE, "d", nil, 2}, tokEOF(3),
		}},
		// a word after an operand only lends its leading 'd' to the
		// operator, the rest is the die size
		{"3dog", []*Token{
			{NUMBER, "3", 3, 1}, {DIE, "d", nil, 2}, {NAME, "og", nil, 3}, tokEOF(5),
		}},
		{"2dx", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NAME, "x", nil, 3}, tokEOF(4),
		}},
		// a lone h or l right after the die is a keep modifier, a longer
		// run is a variable die size
		{"2dh3", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {HIGHEST, "h", nil, 3},
			{NUMBER, "3", 3, 4}, tokEOF(5),
		}},
		{"2dl1", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {LOWEST, "l", nil, 3},
			{NUMBER, "1", 1, 4}, tokEOF(5),
		}},
		{"2dhp", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NAME, "hp", nil, 3}, tokEOF(5),
		}},
		// after the die size an h or l reads as a keep modifier again
		{"4d6h3", []*Token{
			{NUMBER, "4", 4, 1}, {DIE, "d", nil, 2}, {NUMBER, "6", 6, 3},
			{HIGHEST, "h", nil, 4}, {NUMBER, "3", 3, 5}, tokEOF(6),
		}},
		{"4dH2", []*Token{
			{NUMBER, "4", 4, 1}, {DIE, "d", nil, 2}, {HIGHEST, "H", nil, 3},
			{NUMBER, "2", 2, 4}, tokEOF(5),
		}},
		{"2d6l2", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NUMBER, "6", 6, 3},
			{LOWEST, "l", nil, 4}, {NUMBER, "2", 2, 5}, tokEOF(6),
		}},
		{"2d6hp", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NUMBER, "6", 6, 3},
			{HIGHEST, "h", nil, 4}, {NAME, "p", nil, 5}, tokEOF(6),
		}},
		{"2d6 h3", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NUMBER, "6", 6, 3},
			{HIGHEST, "h", nil, 5}, {NUMBER, "3", 3, 6}, tokEOF(7),
		}},
		{"2dx h1", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NAME, "x", nil, 3},
			{HIGHEST, "h", nil, 5}, {NUMBER, "1", 1, 6}, tokEOF(7),
		}},
		{"2d(3)h2", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {LEFT_PAREN, "(", nil, 3},
			{NUMBER, "3", 3, 4}, {RIGHT_PAREN, ")", nil, 5}, {HIGHEST, "h", nil, 6},
			{NUMBER, "2", 2, 7}, tokEOF(8),
		}},
		// a word with no die pending stays a name even after an operand
		{"2 hp", []*Token{
			{NUMBER, "2", 2, 1}, {NAME, "hp", nil, 3}, tokEOF(5),
		}},
		{"(2)d6", []*Token{
			{LEFT_PAREN, "(", nil, 1}, {NUMBER, "2", 2, 2}, {RIGHT_PAREN, ")", nil, 3},
			{DIE, "d", nil, 4}, {NUMBER, "6", 6, 5}, tokEOF(6),
		}},
		{"x d", []*Token{
			{NAME, "x", nil, 1}, {DIE, "d", nil, 3}, tokEOF(4),
		}},
		{"d h 1", []*Token{
			{DIE, "d", nil, 1}, {HIGHEST, "h", nil, 3}, {NUMBER, "1", 1, 5}, tokEOF(6),
		}},
		{"2d6 + 3", []*Token{
			{NUMBER, "2", 2, 1}, {DIE, "d", nil, 2}, {NUMBER, "6", 6, 3},
			{PLUS, "+", nil, 5}, {NUMBER, "3", 3, 7}, tokEOF(8),
		}},
		{"x = 1d20 - 2", []*Token{
			{NAME, "x", nil, 1}, {EQUAL, "=", nil, 3}, {NUMBER, "1", 1, 5},
			{DIE, "d", nil, 6}, {NUMBER, "20", 20, 7}, {MINUS, "-", nil, 10},
			{NUMBER, "2", 2, 12}, tokEOF(13),
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := newScanner(tc.src).scan()

		assert.NoError(err)
		assert.Equal(tc.toks, toks)
	}
}

func TestScanWhiteSpaces(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"    ", []*Token{tokEOF(5)}},
		{"\t\r ", []*Token{tokEOF(4)}},
		{" 2 d ", []*Token{{NUMBER, "2", 2, 2}, {DIE, "d", nil, 4}, tokEOF(6)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := newScanner(tc.src).scan()

		assert.NoError(err)
		assert.Equal(tc.toks, toks)
	}
}

func TestScanWithErrors(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"@", NewSyntaxError(1, "@", "Unexpected character.")},
		{"2d6 $", NewSyntaxError(5, "$", "Unexpected character.")},
		{"1A", NewSyntaxError(2, "A", "Unexpected character.")},
		{"1\n2", NewSyntaxError(2, "\n", "Unexpected character.")},
		{"99999999999999999999", NewSyntaxError(
			1, "99999999999999999999", "Number literal out of range.",
		)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := newScanner(tc.src).scan()

		assert.Nil(toks)
		assert.Equal(tc.err, err)
	}
}
