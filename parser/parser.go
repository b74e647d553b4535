package parser

import (
	"os"
	"strings"

	"github.com/ztrue/tracerr"

	"github.com/Dfsantana1/sintactico/ast"
	"github.com/Dfsantana1/sintactico/lexer"
	"github.com/Dfsantana1/sintactico/types"
)

// Parser owns nothing but its cursor over one token stream; two parsers
// over different inputs can run concurrently.
type Parser struct {
	l *lexer.Lexer
}

func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse consumes the whole token stream and returns the program tree.
// Productions report failures by panicking with a structured diagnostic;
// the one recover here turns that into the returned error. All or
// nothing: no partial tree ever escapes beside an error.
func (p *Parser) Parse() (prog ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				prog = ast.Program{}
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	first := p.l.Peek()

	var body []ast.Statement
	for !p.l.PeekIs(types.EOF) {
		body = append(body, p.parseStatement())
	}
	last := p.l.LexExpecting(types.EOF)

	prog = ast.Program{
		Body: body,
		Pos:  types.Span{From: first.Location.From, To: last.Location.To},
	}
	return
}

func ParseString(source string, filename string) (ast.Program, error) {
	p := NewParser(lexer.NewLexer(strings.NewReader(source), filename))
	return p.Parse()
}

func ParseFile(path string) (ast.Program, error) {
	handle, err := os.Open(path)
	if err != nil {
		return ast.Program{}, tracerr.Wrap(err)
	}
	defer handle.Close()

	p := NewParser(lexer.NewLexer(handle, path))
	return p.Parse()
}

func spanned(from types.Position, to types.Position) types.Span {
	return types.Span{From: from, To: to}
}
