package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	IDENT
	INTEGER
	FLOAT
	CHAR
	STRING

	IF
	ELSE
	WHILE
	DO
	FOR
	RETURN
	PRINT
	FUNCTION
	INTEGER_TYPE
	BOOLEAN_TYPE
	FLOAT_TYPE
	CHAR_TYPE
	STRING_TYPE
	VOID
	TRUE
	FALSE
	ARRAY

	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO

	EQ
	NE
	LT
	LE
	GT
	GE

	AND
	OR
	NOT

	ASSIGN
	INCREMENT
	DECREMENT

	SEMICOLON
	COMMA
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COLON
	ARROW
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:          "EOF",
		ILLEGAL:      "ILLEGAL",
		IDENT:        "IDENT",
		INTEGER:      "INTEGER",
		FLOAT:        "FLOAT",
		CHAR:         "CHAR",
		STRING:       "STRING",
		IF:           "IF",
		ELSE:         "ELSE",
		WHILE:        "WHILE",
		DO:           "DO",
		FOR:          "FOR",
		RETURN:       "RETURN",
		PRINT:        "PRINT",
		FUNCTION:     "FUNCTION",
		INTEGER_TYPE: "INTEGER_TYPE",
		BOOLEAN_TYPE: "BOOLEAN_TYPE",
		FLOAT_TYPE:   "FLOAT_TYPE",
		CHAR_TYPE:    "CHAR_TYPE",
		STRING_TYPE:  "STRING_TYPE",
		VOID:         "VOID",
		TRUE:         "TRUE",
		FALSE:        "FALSE",
		ARRAY:        "ARRAY",
		PLUS:         "PLUS",
		MINUS:        "MINUS",
		MULTIPLY:     "MULTIPLY",
		DIVIDE:       "DIVIDE",
		MODULO:       "MODULO",
		EQ:           "EQ",
		NE:           "NE",
		LT:           "LT",
		LE:           "LE",
		GT:           "GT",
		GE:           "GE",
		AND:          "AND",
		OR:           "OR",
		NOT:          "NOT",
		ASSIGN:       "ASSIGN",
		INCREMENT:    "INCREMENT",
		DECREMENT:    "DECREMENT",
		SEMICOLON:    "SEMICOLON",
		COMMA:        "COMMA",
		LPAREN:       "LPAREN",
		RPAREN:       "RPAREN",
		LBRACE:       "LBRACE",
		RBRACE:       "RBRACE",
		LBRACKET:     "LBRACKET",
		RBRACKET:     "RBRACKET",
		COLON:        "COLON",
		ARROW:        "ARROW",
	}
	return data[t]
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Token is immutable once produced: the lexer creates it, the parser
// consumes it exactly once.
type Token struct {
	Kind     TokenKind
	Lexeme   string
	Location Span
}
