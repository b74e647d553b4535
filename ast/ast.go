package ast

import (
	"github.com/Dfsantana1/sintactico/types"
)

// Node is the closed set of syntax variants. Every node records the span
// of source it came from; nothing in the tree is shared or mutated after
// the parse that built it.
type Node interface {
	Span() types.Span
}

type Statement interface {
	Node
	is_Statement()
}

type Expression interface {
	Node
	is_Expression()
}

type Program struct {
	Body []Statement
	Pos  types.Span
}

func (n Program) Span() types.Span { return n.Pos }

type VarDecl struct {
	Name  string
	Type  string
	Value Expression // nil when declared without an initializer
	Pos   types.Span
}

func (n VarDecl) is_Statement()    {}
func (n VarDecl) Span() types.Span { return n.Pos }

type ArrayDecl struct {
	Name       string
	Type       string
	Dimensions []Expression
	Value      []Expression // nil when declared without an initializer
	Pos        types.Span
}

func (n ArrayDecl) is_Statement()    {}
func (n ArrayDecl) Span() types.Span { return n.Pos }

type FuncDecl struct {
	Name       string
	ReturnType string
	Params     []Statement // VarParm or ArrayParm
	Body       Block
	Pos        types.Span
}

func (n FuncDecl) is_Statement()    {}
func (n FuncDecl) Span() types.Span { return n.Pos }

type VarParm struct {
	Name string
	Type string
	Pos  types.Span
}

func (n VarParm) is_Statement()    {}
func (n VarParm) Span() types.Span { return n.Pos }

type ArrayParm struct {
	Name       string
	Type       string
	Dimensions []Expression
	Pos        types.Span
}

func (n ArrayParm) is_Statement()    {}
func (n ArrayParm) Span() types.Span { return n.Pos }

type Block struct {
	Statements []Statement
	Pos        types.Span
}

func (n Block) is_Statement()    {}
func (n Block) Span() types.Span { return n.Pos }

type IfStmt struct {
	Condition Expression
	Then      Block
	Else      *Block // nil when there is no else branch
	Pos       types.Span
}

func (n IfStmt) is_Statement()    {}
func (n IfStmt) Span() types.Span { return n.Pos }

// WhileStmt's body is always a Block, even when the source supplied a
// single bare statement.
type WhileStmt struct {
	Condition Expression
	Body      Block
	Pos       types.Span
}

func (n WhileStmt) is_Statement()    {}
func (n WhileStmt) Span() types.Span { return n.Pos }

// DoWhileStmt runs its body before the first test; the condition follows
// the body in source order, and the statement ends with a semicolon.
type DoWhileStmt struct {
	Body      Block
	Condition Expression
	Pos       types.Span
}

func (n DoWhileStmt) is_Statement()    {}
func (n DoWhileStmt) Span() types.Span { return n.Pos }

type ForStmt struct {
	Init      Statement
	Condition Expression
	Update    Statement
	Body      Block
	Pos       types.Span
}

func (n ForStmt) is_Statement()    {}
func (n ForStmt) Span() types.Span { return n.Pos }

type ReturnStmt struct {
	Value Expression // nil for a bare return
	Pos   types.Span
}

func (n ReturnStmt) is_Statement()    {}
func (n ReturnStmt) Span() types.Span { return n.Pos }

type PrintStmt struct {
	Value Expression
	Pos   types.Span
}

func (n PrintStmt) is_Statement()    {}
func (n PrintStmt) Span() types.Span { return n.Pos }

type Assignment struct {
	Location Expression // VarLoc or ArrayLoc
	Value    Expression
	Pos      types.Span
}

func (n Assignment) is_Statement()    {}
func (n Assignment) Span() types.Span { return n.Pos }

// ExprStmt holds the bare-expression update of a for statement (i++ and
// friends); the grammar admits no expression statements anywhere else.
type ExprStmt struct {
	Expr Expression
	Pos  types.Span
}

func (n ExprStmt) is_Statement()    {}
func (n ExprStmt) Span() types.Span { return n.Pos }

type BinOper struct {
	Oper  string
	Left  Expression
	Right Expression
	Pos   types.Span
}

func (n BinOper) is_Expression()   {}
func (n BinOper) Span() types.Span { return n.Pos }

type UnaryOper struct {
	Oper    string
	Operand Expression
	Pos     types.Span
}

func (n UnaryOper) is_Expression()   {}
func (n UnaryOper) Span() types.Span { return n.Pos }

// The four increment/decrement forms. Operands are lvalue-shaped by
// construction: the parser rejects anything else before building these.
type PreInc struct {
	Operand Expression
	Pos     types.Span
}

func (n PreInc) is_Expression()   {}
func (n PreInc) Span() types.Span { return n.Pos }

type PreDec struct {
	Operand Expression
	Pos     types.Span
}

func (n PreDec) is_Expression()   {}
func (n PreDec) Span() types.Span { return n.Pos }

type PostInc struct {
	Operand Expression
	Pos     types.Span
}

func (n PostInc) is_Expression()   {}
func (n PostInc) Span() types.Span { return n.Pos }

type PostDec struct {
	Operand Expression
	Pos     types.Span
}

func (n PostDec) is_Expression()   {}
func (n PostDec) Span() types.Span { return n.Pos }

type Integer struct {
	Value int64
	Pos   types.Span
}

func (n Integer) is_Expression()   {}
func (n Integer) Span() types.Span { return n.Pos }

type Float struct {
	Value float64
	Pos   types.Span
}

func (n Float) is_Expression()   {}
func (n Float) Span() types.Span { return n.Pos }

type Boolean struct {
	Value bool
	Pos   types.Span
}

func (n Boolean) is_Expression()   {}
func (n Boolean) Span() types.Span { return n.Pos }

type Char struct {
	Value rune
	Pos   types.Span
}

func (n Char) is_Expression()   {}
func (n Char) Span() types.Span { return n.Pos }

type String struct {
	Value string
	Pos   types.Span
}

func (n String) is_Expression()   {}
func (n String) Span() types.Span { return n.Pos }

type VarLoc struct {
	Name string
	Pos  types.Span
}

func (n VarLoc) is_Expression()   {}
func (n VarLoc) Span() types.Span { return n.Pos }

type ArrayLoc struct {
	Name    string
	Indices []Expression
	Pos     types.Span
}

func (n ArrayLoc) is_Expression()   {}
func (n ArrayLoc) Span() types.Span { return n.Pos }

type FuncCall struct {
	Name string
	Args []Expression
	Pos  types.Span
}

func (n FuncCall) is_Expression()   {}
func (n FuncCall) Span() types.Span { return n.Pos }
