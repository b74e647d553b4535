package parser

import (
	"strconv"

	"github.com/Dfsantana1/sintactico/ast"
	"github.com/Dfsantana1/sintactico/errors"
	"github.com/Dfsantana1/sintactico/types"
)

// Precedence ladder, loosest first: || && (== !=) (< <= > >=) (+ -)
// (* / %) prefix postfix primary. One function per level, never
// backtracking; the lexer's single-token peek is all the lookahead the
// grammar needs.

func (p *Parser) parseExpression() ast.Expression {
	return p.parseOr()
}

func (p *Parser) parseBinary(operators []types.TokenKind, next func() ast.Expression) ast.Expression {
	left := next()

	for p.l.PeekIs(operators...) {
		oper := p.l.Lex()
		right := next()
		left = ast.BinOper{
			Oper:  oper.Lexeme,
			Left:  left,
			Right: right,
			Pos:   spanned(left.Span().From, right.Span().To),
		}
	}

	return left
}

func (p *Parser) parseOr() ast.Expression {
	return p.parseBinary([]types.TokenKind{types.OR}, p.parseAnd)
}

func (p *Parser) parseAnd() ast.Expression {
	return p.parseBinary([]types.TokenKind{types.AND}, p.parseEquality)
}

func (p *Parser) parseEquality() ast.Expression {
	return p.parseBinary([]types.TokenKind{types.EQ, types.NE}, p.parseRelational)
}

func (p *Parser) parseRelational() ast.Expression {
	return p.parseBinary([]types.TokenKind{types.LT, types.LE, types.GT, types.GE}, p.parseAdditive)
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.parseBinary([]types.TokenKind{types.PLUS, types.MINUS}, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() ast.Expression {
	return p.parseBinary([]types.TokenKind{types.MULTIPLY, types.DIVIDE, types.MODULO}, p.parseUnary)
}

func (p *Parser) parseUnary() ast.Expression {
	if p.l.PeekIs(types.NOT, types.MINUS) {
		oper := p.l.Lex()
		operand := p.parseUnary()
		return ast.UnaryOper{
			Oper:    oper.Lexeme,
			Operand: operand,
			Pos:     spanned(oper.Location.From, operand.Span().To),
		}
	}

	if p.l.PeekIs(types.INCREMENT, types.DECREMENT) {
		oper := p.l.Lex()
		operand := p.parseUnary()

		if !prefixOperand(operand) {
			panic(errors.InvalidIncDecOperand{
				Oper:     oper.Lexeme,
				Location: oper.Location,
			})
		}

		pos := spanned(oper.Location.From, operand.Span().To)
		if oper.Kind == types.INCREMENT {
			return ast.PreInc{Operand: operand, Pos: pos}
		}
		return ast.PreDec{Operand: operand, Pos: pos}
	}

	return p.parsePostfix()
}

// parsePostfix applies at most one ++/-- to a primary expression; the
// postfix form never wraps a wider unary, so ++x++ comes out as
// PreInc(PostInc(x)).
func (p *Parser) parsePostfix() ast.Expression {
	primary := p.parsePrimary()

	if p.l.PeekIs(types.INCREMENT, types.DECREMENT) {
		oper := p.l.Lex()

		if !postfixOperand(primary) {
			panic(errors.InvalidIncDecOperand{
				Oper:     oper.Lexeme,
				Location: oper.Location,
			})
		}

		pos := spanned(primary.Span().From, oper.Location.To)
		if oper.Kind == types.INCREMENT {
			return ast.PostInc{Operand: primary, Pos: pos}
		}
		return ast.PostDec{Operand: primary, Pos: pos}
	}

	return primary
}

// prefixOperand: identifier, indexed access, or another inc/dec
// expression (chains like ++ ++x are syntactically fine; whether they
// mean anything is a later pass's problem).
func prefixOperand(e ast.Expression) bool {
	switch e.(type) {
	case ast.VarLoc, ast.ArrayLoc, ast.PreInc, ast.PreDec, ast.PostInc, ast.PostDec:
		return true
	}
	return false
}

// postfixOperand: the postfix forms take only a plain location.
func postfixOperand(e ast.Expression) bool {
	switch e.(type) {
	case ast.VarLoc, ast.ArrayLoc:
		return true
	}
	return false
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.l.LexExpecting(
		types.INTEGER, types.FLOAT, types.CHAR, types.STRING,
		types.TRUE, types.FALSE, types.IDENT, types.LPAREN,
	)

	switch tok.Kind {
	case types.INTEGER:
		parsed, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			panic(err)
		}
		return ast.Integer{Value: parsed, Pos: tok.Location}
	case types.FLOAT:
		parsed, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			panic(err)
		}
		return ast.Float{Value: parsed, Pos: tok.Location}
	case types.TRUE:
		return ast.Boolean{Value: true, Pos: tok.Location}
	case types.FALSE:
		return ast.Boolean{Value: false, Pos: tok.Location}
	case types.CHAR:
		return ast.Char{Value: decodeChar(tok.Lexeme), Pos: tok.Location}
	case types.STRING:
		return ast.String{Value: decodeString(tok.Lexeme), Pos: tok.Location}
	case types.LPAREN:
		expr := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		return expr
	case types.IDENT:
		if p.l.PeekIs(types.LPAREN) {
			return p.parseCall(tok)
		}
		if p.l.PeekIs(types.LBRACKET) {
			p.l.LexExpecting(types.LBRACKET)
			indices := p.parseExprList()
			end := p.l.LexExpecting(types.RBRACKET)
			return ast.ArrayLoc{
				Name:    tok.Lexeme,
				Indices: indices,
				Pos:     spanned(tok.Location.From, end.Location.To),
			}
		}
		return ast.VarLoc{Name: tok.Lexeme, Pos: tok.Location}
	}

	panic("unhandled")
}

func (p *Parser) parseCall(name types.Token) ast.Expression {
	p.l.LexExpecting(types.LPAREN)

	var args []ast.Expression
	if !p.l.PeekIs(types.RPAREN) {
		args = p.parseExprList()
	}
	end := p.l.LexExpecting(types.RPAREN)

	return ast.FuncCall{
		Name: name.Lexeme,
		Args: args,
		Pos:  spanned(name.Location.From, end.Location.To),
	}
}

func (p *Parser) parseExprList() []ast.Expression {
	exprs := []ast.Expression{p.parseExpression()}

	for p.l.PeekIs(types.COMMA) {
		p.l.LexExpecting(types.COMMA)
		exprs = append(exprs, p.parseExpression())
	}

	return exprs
}

// decodeChar strips the quotes and escapes from a CHAR lexeme. The
// lexeme is known well-formed: the lexer only emits CHAR for a closed
// '...' span.
func decodeChar(lexeme string) rune {
	body := lexeme[1 : len(lexeme)-1]
	runes := []rune(body)
	if len(runes) == 0 {
		return 0
	}
	if runes[0] == '\\' && len(runes) > 1 {
		return unescape(runes[1])
	}
	return runes[0]
}

func decodeString(lexeme string) string {
	body := []rune(lexeme[1 : len(lexeme)-1])

	var out []rune
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
			out = append(out, unescape(body[i]))
			continue
		}
		out = append(out, body[i])
	}
	return string(out)
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	}
	return r
}
