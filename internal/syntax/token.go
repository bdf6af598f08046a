package syntax

import "fmt"

type TokenType int

const (
	TOKEN_LEFT_PAREN TokenType = iota + 1
	TOKEN_RIGHT_PAREN
	TOKEN_LEFT_BRACE
	TOKEN_RIGHT_BRACE
	TOKEN_COMMA
	TOKEN_DOT
	TOKEN_PLUS
	TOKEN_SEMICOLON
	TOKEN_LESS
	TOKEN_EQUAL

	// literals
	TOKEN_IDENTIFIER
	TOKEN_STRING
	TOKEN_NUMBER

	// keywords
	TOKEN_CLASS
	TOKEN_FALSE
	TOKEN_NIL
	TOKEN_PRINT
	TOKEN_RETURN
	TOKEN_SUPER
	TOKEN_THIS
	TOKEN_TRUE
	TOKEN_VAR

	TOKEN_EOF
)

var (
	TokenTypeStr = map[TokenType]string{
		TOKEN_LEFT_PAREN:  "(",
		TOKEN_RIGHT_PAREN: ")",
		TOKEN_LEFT_BRACE:  "{",
		TOKEN_RIGHT_BRACE: "}",
		TOKEN_COMMA:       ",",
		TOKEN_DOT:         ".",
		TOKEN_PLUS:        "+",
		TOKEN_SEMICOLON:   ";",
		TOKEN_LESS:        "<",
		TOKEN_EQUAL:       "=",

		TOKEN_IDENTIFIER: "identifier",
		TOKEN_STRING:     "string",
		TOKEN_NUMBER:     "number",

		TOKEN_CLASS:  "class",
		TOKEN_FALSE:  "false",
		TOKEN_NIL:    "nil",
		TOKEN_PRINT:  "print",
		TOKEN_RETURN: "return",
		TOKEN_SUPER:  "super",
		TOKEN_THIS:   "this",
		TOKEN_TRUE:   "true",
		TOKEN_VAR:    "var",

		TOKEN_EOF: "EOF",
	}
)

type Token struct {
	TokenType TokenType
	Lexeme    string
	Literal   any
	Line      int
}

func NewToken(tokenType TokenType, lexeme string, literal any, line int) Token {
	return Token{tokenType, lexeme, literal, line}
}

func (t Token) IsEmpty() bool {
	return t.TokenType == 0
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("token: {type: %s literal:%v, line: %d}",
			TokenTypeStr[t.TokenType], t.Literal, t.Line)
	}
	return fmt.Sprintf("token: {type: %s lexeme:%s literal:%v, line: %d}",
		TokenTypeStr[t.TokenType], t.Lexeme, t.Literal, t.Line)
}
