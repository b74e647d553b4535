package errors

import (
	"fmt"

	"github.com/Dfsantana1/sintactico/types"
)

// Diagnostic is the stable surface the CLI and tests assert on: a kind,
// a message, and the span of the offending input.
type Diagnostic interface {
	error
	Kind() string
	Where() types.Span
}

const (
	KindLex   = "lex"
	KindParse = "parse"
)

type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("illegal character %q. %s", e.Char, e.Location)
}

func (e UnexpectedCharacter) Kind() string      { return KindLex }
func (e UnexpectedCharacter) Where() types.Span { return e.Location }

type UnterminatedLiteral struct {
	Quote    rune
	Location types.Span
}

func (e UnterminatedLiteral) Error() string {
	return fmt.Sprintf("unterminated %c...%c literal. %s", e.Quote, e.Quote, e.Location)
}

func (e UnterminatedLiteral) Kind() string      { return KindLex }
func (e UnterminatedLiteral) Where() types.Span { return e.Location }

// InvalidCharLiteral rejects '' and 'ab': a char literal holds exactly
// one character or one escape.
type InvalidCharLiteral struct {
	Location types.Span
}

func (e InvalidCharLiteral) Error() string {
	return fmt.Sprintf("char literal must hold exactly one character. %s", e.Location)
}

func (e InvalidCharLiteral) Kind() string      { return KindLex }
func (e InvalidCharLiteral) Where() types.Span { return e.Location }

type UnterminatedComment struct {
	Location types.Span
}

func (e UnterminatedComment) Error() string {
	return fmt.Sprintf("block comment is never closed. %s", e.Location)
}

func (e UnterminatedComment) Kind() string      { return KindLex }
func (e UnterminatedComment) Where() types.Span { return e.Location }

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Found    string
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s (%q), expected a %s. %s", e.Got, e.Found, e.Expected, e.Location)
}

func (e ExpectedKindGotKind) Kind() string      { return KindParse }
func (e ExpectedKindGotKind) Where() types.Span { return e.Location }

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Found    string
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s (%q), expected one of %s. %s", e.Got, e.Found, e.Expected, e.Location)
}

func (e ExpectedOneOfKindGotKind) Kind() string      { return KindParse }
func (e ExpectedOneOfKindGotKind) Where() types.Span { return e.Location }

// InvalidAssignTarget rejects an assignment whose left side is not a
// variable or array location.
type InvalidAssignTarget struct {
	Location types.Span
}

func (e InvalidAssignTarget) Error() string {
	return fmt.Sprintf("left side of = must be an assignable location. %s", e.Location)
}

func (e InvalidAssignTarget) Kind() string      { return KindParse }
func (e InvalidAssignTarget) Where() types.Span { return e.Location }

// InvalidIncDecOperand rejects ++/-- applied to something that is not
// lvalue-shaped, at parse time rather than in a later pass.
type InvalidIncDecOperand struct {
	Oper     string
	Location types.Span
}

func (e InvalidIncDecOperand) Error() string {
	return fmt.Sprintf("operand of %s must be an assignable location. %s", e.Oper, e.Location)
}

func (e InvalidIncDecOperand) Kind() string      { return KindParse }
func (e InvalidIncDecOperand) Where() types.Span { return e.Location }
