package dice

import "fmt"

// Token is a group of characters with semantic meaning, tagged with the
// column where it was scanned.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Col     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, col int) *Token {
	return &Token{typ, lexeme, literal, col}
}

func (token *Token) String() string {
	return fmt.Sprintf("%s %s %v", token.Typ.String(), token.Lexeme, token.Literal)
}

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	PLUS
	MINUS
	STAR
	SLASH
	EQUAL

	// Dice operators
	DIE
	HIGHEST
	LOWEST

	// Literals
	NUMBER
	NAME

	EOF
)

// TokenType identifies the kind of a scanned token
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case EQUAL:
		return "="
	case DIE:
		return "DIE"
	case HIGHEST:
		return "HIGHEST"
	case LOWEST:
		return "LOWEST"
	case NUMBER:
		return "NUMBER"
	case NAME:
		return "NAME"
	case EOF:
		return "EOF"
	}
	return ""
}
