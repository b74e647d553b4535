package lexer

import (
	"bufio"
	"io"
	"unicode"

	"github.com/ztrue/tracerr"

	"github.com/Dfsantana1/sintactico/errors"
	"github.com/Dfsantana1/sintactico/types"
)

type Lexer struct {
	pos    types.Position
	reader *bufio.Reader
	peeked *types.Token
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

var keywords = map[string]types.TokenKind{
	"if":       types.IF,
	"else":     types.ELSE,
	"while":    types.WHILE,
	"do":       types.DO,
	"for":      types.FOR,
	"return":   types.RETURN,
	"print":    types.PRINT,
	"function": types.FUNCTION,
	"integer":  types.INTEGER_TYPE,
	"boolean":  types.BOOLEAN_TYPE,
	"float":    types.FLOAT_TYPE,
	"char":     types.CHAR_TYPE,
	"string":   types.STRING_TYPE,
	"void":     types.VOID,
	"true":     types.TRUE,
	"false":    types.FALSE,
	"array":    types.ARRAY,
}

var singles = map[rune]types.TokenKind{
	';': types.SEMICOLON,
	',': types.COMMA,
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'[': types.LBRACKET,
	']': types.RBRACKET,
	':': types.COLON,
	'%': types.MODULO,
	'*': types.MULTIPLY,
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos.Column--
}

func (l *Lexer) kinded(t types.TokenKind, lexeme string) types.Token {
	return types.Token{
		Kind:     t,
		Lexeme:   lexeme,
		Location: types.SingleCharSpan(l.pos),
	}
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || unicode.IsDigit(r)
}

// nextIs reports whether the next rune in the input is b, and consumes it
// when it is. The greedy two-character match (++, --, ==, ...) happens
// here, before any single-character fallback.
func (l *Lexer) nextIs(b byte) bool {
	byt, err := l.reader.Peek(1)
	if err != nil && err != io.EOF {
		panic(err)
	}
	if len(byt) == 0 || byt[0] != b {
		return false
	}

	if _, _, err := l.reader.ReadRune(); err != nil {
		panic(err)
	}
	l.pos.Column++
	return true
}

func (l *Lexer) lexIdent() (types.Position, types.Position, string) {
	var lit string
	var from types.Position
	var to types.Position

	r, _, err := l.reader.ReadRune()
	l.pos.Column++
	from = l.pos
	to = l.pos

	for {
		if err != nil {
			if err == io.EOF {
				return from, to, lit
			}
			panic(err)
		}

		if otherChar(r) {
			lit += string(r)
			to = l.pos
		} else {
			l.backup()
			return from, to, lit
		}

		r, _, err = l.reader.ReadRune()
		l.pos.Column++
	}
}

func (l *Lexer) lexNumber() (types.Position, types.Position, string, types.TokenKind) {
	var lit string
	var from types.Position
	var to types.Position
	kind := types.INTEGER

	r, _, err := l.reader.ReadRune()
	l.pos.Column++
	from = l.pos
	to = l.pos

	for {
		if err != nil {
			if err == io.EOF {
				return from, to, lit, kind
			}
			panic(err)
		}

		if unicode.IsDigit(r) {
			lit += string(r)
			to = l.pos
		} else if r == '.' && kind == types.INTEGER {
			// a float needs a digit on both sides of the dot, and a
			// bare dot is no token at all, so anything else makes the
			// dot itself the illegal character. Peek invalidates
			// UnreadRune, so the dot cannot be given back here.
			byt, perr := l.reader.Peek(1)
			if perr != nil && perr != io.EOF {
				panic(perr)
			}
			if len(byt) == 0 || byt[0] < '0' || byt[0] > '9' {
				panic(errors.UnexpectedCharacter{
					Char:     r,
					Location: types.SingleCharSpan(l.pos),
				})
			}
			kind = types.FLOAT
			lit += string(r)
			to = l.pos
		} else {
			l.backup()
			return from, to, lit, kind
		}

		r, _, err = l.reader.ReadRune()
		l.pos.Column++
	}
}

// lexQuoted scans a '...'/"..." literal whose opening quote has already
// been consumed. The returned lexeme keeps the quotes and escapes intact
// so that re-lexing it reproduces the same token.
func (l *Lexer) lexQuoted(quote rune, from types.Position) (types.Position, string) {
	lit := string(quote)

	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				panic(errors.UnterminatedLiteral{
					Quote:    quote,
					Location: types.Span{From: from, To: l.pos},
				})
			}
			panic(err)
		}
		l.pos.Column++

		switch r {
		case quote:
			lit += string(r)
			return l.pos, lit
		case '\\':
			esc, _, err := l.reader.ReadRune()
			if err != nil {
				if err == io.EOF {
					panic(errors.UnterminatedLiteral{
						Quote:    quote,
						Location: types.Span{From: from, To: l.pos},
					})
				}
				panic(err)
			}
			l.pos.Column++
			lit += string(r) + string(esc)
		case '\n':
			panic(errors.UnterminatedLiteral{
				Quote:    quote,
				Location: types.Span{From: from, To: l.pos},
			})
		default:
			lit += string(r)
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return
			}
			panic(err)
		}
		l.pos.Column++

		if r == '\n' {
			l.newline()
			return
		}
	}
}

func (l *Lexer) skipBlockComment(from types.Position) {
	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				panic(errors.UnterminatedComment{
					Location: types.Span{From: from, To: l.pos},
				})
			}
			panic(err)
		}
		l.pos.Column++

		switch r {
		case '\n':
			l.newline()
		case '*':
			if l.nextIs('/') {
				return
			}
		}
	}
}

func (l *Lexer) Peek() types.Token {
	if l.peeked != nil {
		return *l.peeked
	}

	tok := l.Lex()
	l.peeked = &tok

	return tok
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	token := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

func (l *Lexer) LexExpecting(k ...types.TokenKind) types.Token {
	token := l.Lex()
	for _, kind := range k {
		if token.Kind == kind {
			return token
		}
	}

	if len(k) == 1 {
		panic(errors.ExpectedKindGotKind{
			Expected: k[0],
			Got:      token.Kind,
			Found:    token.Lexeme,
			Location: token.Location,
		})
	}

	panic(errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      token.Kind,
		Found:    token.Lexeme,
		Location: token.Location,
	})
}

func (l *Lexer) Lex() types.Token {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked
	}

	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return l.kinded(types.EOF, "")
			}
			panic(err)
		}

		l.pos.Column++

		if kind, ok := singles[r]; ok {
			return l.kinded(kind, string(r))
		}

		switch r {
		case '\n':
			l.newline()
			continue
		case '+':
			from := l.pos
			if l.nextIs('+') {
				return types.Token{Kind: types.INCREMENT, Lexeme: "++", Location: types.Span{From: from, To: l.pos}}
			}
			return l.kinded(types.PLUS, "+")
		case '-':
			from := l.pos
			if l.nextIs('-') {
				return types.Token{Kind: types.DECREMENT, Lexeme: "--", Location: types.Span{From: from, To: l.pos}}
			}
			return l.kinded(types.MINUS, "-")
		case '=':
			from := l.pos
			if l.nextIs('=') {
				return types.Token{Kind: types.EQ, Lexeme: "==", Location: types.Span{From: from, To: l.pos}}
			}
			if l.nextIs('>') {
				return types.Token{Kind: types.ARROW, Lexeme: "=>", Location: types.Span{From: from, To: l.pos}}
			}
			return l.kinded(types.ASSIGN, "=")
		case '!':
			from := l.pos
			if l.nextIs('=') {
				return types.Token{Kind: types.NE, Lexeme: "!=", Location: types.Span{From: from, To: l.pos}}
			}
			return l.kinded(types.NOT, "!")
		case '<':
			from := l.pos
			if l.nextIs('=') {
				return types.Token{Kind: types.LE, Lexeme: "<=", Location: types.Span{From: from, To: l.pos}}
			}
			return l.kinded(types.LT, "<")
		case '>':
			from := l.pos
			if l.nextIs('=') {
				return types.Token{Kind: types.GE, Lexeme: ">=", Location: types.Span{From: from, To: l.pos}}
			}
			return l.kinded(types.GT, ">")
		case '&':
			from := l.pos
			if l.nextIs('&') {
				return types.Token{Kind: types.AND, Lexeme: "&&", Location: types.Span{From: from, To: l.pos}}
			}
			panic(errors.UnexpectedCharacter{Char: r, Location: types.SingleCharSpan(from)})
		case '|':
			from := l.pos
			if l.nextIs('|') {
				return types.Token{Kind: types.OR, Lexeme: "||", Location: types.Span{From: from, To: l.pos}}
			}
			panic(errors.UnexpectedCharacter{Char: r, Location: types.SingleCharSpan(from)})
		case '/':
			from := l.pos
			if l.nextIs('/') {
				l.skipLineComment()
				continue
			}
			if l.nextIs('*') {
				l.skipBlockComment(from)
				continue
			}
			return l.kinded(types.DIVIDE, "/")
		case '"', '\'':
			from := l.pos
			to, lit := l.lexQuoted(r, from)
			kind := types.STRING
			if r == '\'' {
				kind = types.CHAR
				body := []rune(lit[1 : len(lit)-1])
				if !(len(body) == 1 || (len(body) == 2 && body[0] == '\\')) {
					panic(errors.InvalidCharLiteral{
						Location: types.Span{From: from, To: to},
					})
				}
			}
			return types.Token{Kind: kind, Lexeme: lit, Location: types.Span{From: from, To: to}}
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsDigit(r):
			l.backup()
			from, to, lit, kind := l.lexNumber()
			return types.Token{Kind: kind, Lexeme: lit, Location: types.Span{From: from, To: to}}
		case firstChar(r):
			l.backup()
			from, to, lit := l.lexIdent()

			if kind, ok := keywords[lit]; ok {
				return types.Token{Kind: kind, Lexeme: lit, Location: types.Span{From: from, To: to}}
			}

			return types.Token{Kind: types.IDENT, Lexeme: lit, Location: types.Span{From: from, To: to}}
		}

		panic(errors.UnexpectedCharacter{Char: r, Location: types.SingleCharSpan(l.pos)})
	}
}

// LexAll drains the stream through the terminating EOF token, turning a
// lex diagnostic into a returned error. The lexer is not restartable
// afterwards; re-lexing needs a fresh NewLexer on the same source.
func (l *Lexer) LexAll() (tokens []types.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for {
		tok := l.Lex()
		tokens = append(tokens, tok)

		if tok.Kind == types.EOF {
			return
		}
	}
}
