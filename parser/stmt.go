package parser

import (
	"github.com/Dfsantana1/sintactico/ast"
	"github.com/Dfsantana1/sintactico/errors"
	"github.com/Dfsantana1/sintactico/types"
)

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.l.PeekIs(types.IF):
		return p.parseIf()
	case p.l.PeekIs(types.WHILE):
		return p.parseWhile()
	case p.l.PeekIs(types.DO):
		return p.parseDoWhile()
	case p.l.PeekIs(types.FOR):
		return p.parseFor()
	case p.l.PeekIs(types.RETURN):
		return p.parseReturn()
	case p.l.PeekIs(types.PRINT):
		return p.parsePrint()
	case p.l.PeekIs(types.LBRACE):
		return p.parseBlock()
	case p.l.PeekIs(types.IDENT):
		return p.parseDeclOrAssign()
	}

	tok := p.l.Peek()
	panic(errors.ExpectedOneOfKindGotKind{
		Expected: []types.TokenKind{
			types.IF, types.WHILE, types.DO, types.FOR,
			types.RETURN, types.PRINT, types.LBRACE, types.IDENT,
		},
		Got:      tok.Kind,
		Found:    tok.Lexeme,
		Location: tok.Location,
	})
}

func (p *Parser) parseBlock() ast.Block {
	open := p.l.LexExpecting(types.LBRACE)

	var statements []ast.Statement
	for !p.l.PeekIs(types.RBRACE, types.EOF) {
		statements = append(statements, p.parseStatement())
	}
	close := p.l.LexExpecting(types.RBRACE)

	return ast.Block{
		Statements: statements,
		Pos:        spanned(open.Location.From, close.Location.To),
	}
}

// blockOrStmt normalizes a single bare statement into a one-statement
// block, so loop bodies and if branches are always Block nodes.
func (p *Parser) blockOrStmt() ast.Block {
	if p.l.PeekIs(types.LBRACE) {
		return p.parseBlock()
	}

	stmt := p.parseStatement()
	return ast.Block{
		Statements: []ast.Statement{stmt},
		Pos:        stmt.Span(),
	}
}

func (p *Parser) parseIf() ast.Statement {
	kw := p.l.LexExpecting(types.IF)
	p.l.LexExpecting(types.LPAREN)
	condition := p.parseExpression()
	p.l.LexExpecting(types.RPAREN)
	then := p.blockOrStmt()

	stmt := ast.IfStmt{
		Condition: condition,
		Then:      then,
		Pos:       spanned(kw.Location.From, then.Pos.To),
	}
	if p.l.PeekIs(types.ELSE) {
		p.l.LexExpecting(types.ELSE)
		elseBlock := p.blockOrStmt()
		stmt.Else = &elseBlock
		stmt.Pos = spanned(kw.Location.From, elseBlock.Pos.To)
	}

	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	kw := p.l.LexExpecting(types.WHILE)
	p.l.LexExpecting(types.LPAREN)
	condition := p.parseExpression()
	p.l.LexExpecting(types.RPAREN)
	body := p.blockOrStmt()

	return ast.WhileStmt{
		Condition: condition,
		Body:      body,
		Pos:       spanned(kw.Location.From, body.Pos.To),
	}
}

// do Block while ( Expr ) ; — the only compound-body statement with a
// trailing semicolon, since the test follows the body.
func (p *Parser) parseDoWhile() ast.Statement {
	kw := p.l.LexExpecting(types.DO)
	body := p.blockOrStmt()
	p.l.LexExpecting(types.WHILE)
	p.l.LexExpecting(types.LPAREN)
	condition := p.parseExpression()
	p.l.LexExpecting(types.RPAREN)
	end := p.l.LexExpecting(types.SEMICOLON)

	return ast.DoWhileStmt{
		Body:      body,
		Condition: condition,
		Pos:       spanned(kw.Location.From, end.Location.To),
	}
}

func (p *Parser) parseFor() ast.Statement {
	kw := p.l.LexExpecting(types.FOR)
	p.l.LexExpecting(types.LPAREN)
	init := p.parseForInit()
	condition := p.parseExpression()
	p.l.LexExpecting(types.SEMICOLON)
	update := p.parseForUpdate()
	p.l.LexExpecting(types.RPAREN)
	body := p.blockOrStmt()

	return ast.ForStmt{
		Init:      init,
		Condition: condition,
		Update:    update,
		Body:      body,
		Pos:       spanned(kw.Location.From, body.Pos.To),
	}
}

// parseForInit parses the first clause of a for header: a variable
// declaration or an assignment, with its semicolon. Function and array
// declarations have no business there.
func (p *Parser) parseForInit() ast.Statement {
	name := p.l.LexExpecting(types.IDENT)

	switch {
	case p.l.PeekIs(types.COLON):
		p.l.LexExpecting(types.COLON)
		return p.parseVarDecl(name)
	case p.l.PeekIs(types.ASSIGN):
		loc := ast.VarLoc{Name: name.Lexeme, Pos: name.Location}
		return p.parseAssignTail(name, loc)
	case p.l.PeekIs(types.LBRACKET):
		return p.parseArrayAssign(name)
	}

	tok := p.l.Peek()
	panic(errors.ExpectedOneOfKindGotKind{
		Expected: []types.TokenKind{types.COLON, types.ASSIGN, types.LBRACKET},
		Got:      tok.Kind,
		Found:    tok.Lexeme,
		Location: tok.Location,
	})
}

// parseForUpdate parses the third clause of a for header: an assignment
// or a bare expression, without a trailing semicolon.
func (p *Parser) parseForUpdate() ast.Statement {
	expr := p.parseExpression()

	if p.l.PeekIs(types.ASSIGN) {
		switch expr.(type) {
		case ast.VarLoc, ast.ArrayLoc:
		default:
			panic(errors.InvalidAssignTarget{Location: expr.Span()})
		}
		p.l.LexExpecting(types.ASSIGN)
		value := p.parseExpression()

		return ast.Assignment{
			Location: expr,
			Value:    value,
			Pos:      spanned(expr.Span().From, value.Span().To),
		}
	}

	return ast.ExprStmt{Expr: expr, Pos: expr.Span()}
}

func (p *Parser) parseReturn() ast.Statement {
	kw := p.l.LexExpecting(types.RETURN)

	var value ast.Expression
	if !p.l.PeekIs(types.SEMICOLON) {
		value = p.parseExpression()
	}
	end := p.l.LexExpecting(types.SEMICOLON)

	return ast.ReturnStmt{
		Value: value,
		Pos:   spanned(kw.Location.From, end.Location.To),
	}
}

func (p *Parser) parsePrint() ast.Statement {
	kw := p.l.LexExpecting(types.PRINT)
	value := p.parseExpression()
	end := p.l.LexExpecting(types.SEMICOLON)

	return ast.PrintStmt{
		Value: value,
		Pos:   spanned(kw.Location.From, end.Location.To),
	}
}

// parseDeclOrAssign handles everything that starts with an identifier:
//
//	x: integer = 5;          variable declaration
//	x: array [10] integer;   array declaration
//	x: function void () = {} function declaration
//	x = expr;                assignment
//	x[i] = expr;             array assignment
func (p *Parser) parseDeclOrAssign() ast.Statement {
	name := p.l.LexExpecting(types.IDENT)

	switch {
	case p.l.PeekIs(types.COLON):
		p.l.LexExpecting(types.COLON)
		switch {
		case p.l.PeekIs(types.FUNCTION):
			return p.parseFuncDecl(name)
		case p.l.PeekIs(types.ARRAY):
			return p.parseArrayDecl(name)
		default:
			return p.parseVarDecl(name)
		}
	case p.l.PeekIs(types.ASSIGN):
		loc := ast.VarLoc{Name: name.Lexeme, Pos: name.Location}
		return p.parseAssignTail(name, loc)
	case p.l.PeekIs(types.LBRACKET):
		return p.parseArrayAssign(name)
	}

	tok := p.l.Peek()
	panic(errors.ExpectedOneOfKindGotKind{
		Expected: []types.TokenKind{types.COLON, types.ASSIGN, types.LBRACKET},
		Got:      tok.Kind,
		Found:    tok.Lexeme,
		Location: tok.Location,
	})
}

func (p *Parser) parseArrayAssign(name types.Token) ast.Statement {
	p.l.LexExpecting(types.LBRACKET)
	indices := p.parseExprList()
	end := p.l.LexExpecting(types.RBRACKET)

	loc := ast.ArrayLoc{
		Name:    name.Lexeme,
		Indices: indices,
		Pos:     spanned(name.Location.From, end.Location.To),
	}
	return p.parseAssignTail(name, loc)
}

func (p *Parser) parseAssignTail(name types.Token, loc ast.Expression) ast.Statement {
	p.l.LexExpecting(types.ASSIGN)
	value := p.parseExpression()
	end := p.l.LexExpecting(types.SEMICOLON)

	return ast.Assignment{
		Location: loc,
		Value:    value,
		Pos:      spanned(name.Location.From, end.Location.To),
	}
}

func (p *Parser) parseVarDecl(name types.Token) ast.Statement {
	typ := p.parseType()

	var value ast.Expression
	if p.l.PeekIs(types.ASSIGN) {
		p.l.LexExpecting(types.ASSIGN)
		value = p.parseExpression()
	}
	end := p.l.LexExpecting(types.SEMICOLON)

	return ast.VarDecl{
		Name:  name.Lexeme,
		Type:  typ.Lexeme,
		Value: value,
		Pos:   spanned(name.Location.From, end.Location.To),
	}
}

func (p *Parser) parseArrayDecl(name types.Token) ast.Statement {
	dimensions, typ := p.parseArrayType()

	var value []ast.Expression
	if p.l.PeekIs(types.ASSIGN) {
		p.l.LexExpecting(types.ASSIGN)
		p.l.LexExpecting(types.LBRACE)
		value = p.parseExprList()
		p.l.LexExpecting(types.RBRACE)
	}
	end := p.l.LexExpecting(types.SEMICOLON)

	return ast.ArrayDecl{
		Name:       name.Lexeme,
		Type:       typ.Lexeme,
		Dimensions: dimensions,
		Value:      value,
		Pos:        spanned(name.Location.From, end.Location.To),
	}
}

func (p *Parser) parseFuncDecl(name types.Token) ast.Statement {
	p.l.LexExpecting(types.FUNCTION)
	returnType := p.parseType()

	p.l.LexExpecting(types.LPAREN)
	var params []ast.Statement
	if !p.l.PeekIs(types.RPAREN) {
		for {
			params = append(params, p.parseParam())

			if p.l.PeekIs(types.COMMA) {
				p.l.LexExpecting(types.COMMA)
				continue
			}
			break
		}
	}
	p.l.LexExpecting(types.RPAREN)

	p.l.LexExpecting(types.ASSIGN)
	body := p.parseBlock()

	return ast.FuncDecl{
		Name:       name.Lexeme,
		ReturnType: returnType.Lexeme,
		Params:     params,
		Body:       body,
		Pos:        spanned(name.Location.From, body.Pos.To),
	}
}

func (p *Parser) parseParam() ast.Statement {
	name := p.l.LexExpecting(types.IDENT)
	p.l.LexExpecting(types.COLON)

	if p.l.PeekIs(types.ARRAY) {
		dimensions, typ := p.parseArrayType()
		return ast.ArrayParm{
			Name:       name.Lexeme,
			Type:       typ.Lexeme,
			Dimensions: dimensions,
			Pos:        spanned(name.Location.From, typ.Location.To),
		}
	}

	typ := p.parseType()
	return ast.VarParm{
		Name: name.Lexeme,
		Type: typ.Lexeme,
		Pos:  spanned(name.Location.From, typ.Location.To),
	}
}

// array ('[' Expr ']')+ Type — at least one dimension.
func (p *Parser) parseArrayType() ([]ast.Expression, types.Token) {
	p.l.LexExpecting(types.ARRAY)

	var dimensions []ast.Expression
	p.l.LexExpecting(types.LBRACKET)
	dimensions = append(dimensions, p.parseExpression())
	p.l.LexExpecting(types.RBRACKET)

	for p.l.PeekIs(types.LBRACKET) {
		p.l.LexExpecting(types.LBRACKET)
		dimensions = append(dimensions, p.parseExpression())
		p.l.LexExpecting(types.RBRACKET)
	}

	return dimensions, p.parseType()
}

func (p *Parser) parseType() types.Token {
	return p.l.LexExpecting(
		types.INTEGER_TYPE, types.BOOLEAN_TYPE, types.FLOAT_TYPE,
		types.CHAR_TYPE, types.STRING_TYPE, types.VOID,
	)
}
