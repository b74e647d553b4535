package ast

import (
	"testing"

	"github.com/Dfsantana1/sintactico/types"
)

func sampleLoop() Node {
	x := VarLoc{Name: "x"}
	cond := BinOper{Oper: "<", Left: x, Right: Integer{Value: 10}}
	body := Block{Statements: []Statement{
		Assignment{Location: x, Value: PostInc{Operand: x}},
	}}
	return WhileStmt{Condition: cond, Body: body}
}

func TestLabels(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{Program{}, "Program"},
		{WhileStmt{}, "WhileStmt"},
		{DoWhileStmt{}, "DoWhileStmt"},
		{PreInc{}, "PreInc"},
		{PostDec{}, "PostDec"},
		{VarDecl{Name: "x", Type: "integer"}, "VarDecl x: integer"},
		{BinOper{Oper: "+"}, "BinOper +"},
		{Integer{Value: 42}, "Integer 42"},
		{Boolean{Value: true}, "Boolean true"},
		{Char{Value: '\n'}, `Char '\n'`},
		{VarLoc{Name: "count"}, "VarLoc count"},
		{FuncCall{Name: "max"}, "FuncCall max"},
	}

	for _, c := range cases {
		if got := Label(c.node); got != c.want {
			t.Errorf("Label(%T) = %q, want %q", c.node, got, c.want)
		}
	}
}

// Children come back in source order with their field names, so a
// renderer can reconstruct the shape without knowing any variant.
func TestChildrenOrder(t *testing.T) {
	while := sampleLoop()

	children := Children(while)
	if len(children) != 2 {
		t.Fatalf("WhileStmt has %d children, want 2", len(children))
	}
	if children[0].Name != "condition" || children[1].Name != "body" {
		t.Errorf("child names are %q, %q; want condition, body", children[0].Name, children[1].Name)
	}

	do := DoWhileStmt{Body: Block{}, Condition: Boolean{Value: true}}
	children = Children(do)
	if children[0].Name != "body" || children[1].Name != "condition" {
		t.Errorf("DoWhileStmt children are %q, %q; the body comes first in source order",
			children[0].Name, children[1].Name)
	}
}

func TestOptionalChildrenOmitted(t *testing.T) {
	if n := len(Children(VarDecl{Name: "x", Type: "integer"})); n != 0 {
		t.Errorf("uninitialized VarDecl has %d children, want 0", n)
	}
	if n := len(Children(IfStmt{Condition: Boolean{}, Then: Block{}})); n != 2 {
		t.Errorf("else-less IfStmt has %d children, want 2", n)
	}

	elseBlock := Block{}
	withElse := IfStmt{Condition: Boolean{}, Then: Block{}, Else: &elseBlock}
	if n := len(Children(withElse)); n != 3 {
		t.Errorf("IfStmt with else has %d children, want 3", n)
	}
}

// The walk terminates and never yields a nil child.
func TestWalkTerminatesWithoutNils(t *testing.T) {
	var visit func(n Node) int
	visit = func(n Node) int {
		count := 1
		for _, child := range Children(n) {
			if child.Node == nil {
				t.Fatalf("nil child %q under %s", child.Name, Label(n))
			}
			count += visit(child.Node)
		}
		return count
	}

	program := Program{Body: []Statement{
		VarDecl{Name: "x", Type: "integer", Value: Integer{Value: 5}},
		sampleLoop().(Statement),
		ForStmt{
			Init:      Assignment{Location: VarLoc{Name: "i"}, Value: Integer{}},
			Condition: Boolean{Value: true},
			Update:    ExprStmt{Expr: PreDec{Operand: VarLoc{Name: "i"}}},
			Body:      Block{},
		},
	}}

	if got := visit(program); got < 10 {
		t.Errorf("visited %d nodes, expected the whole tree", got)
	}
}

func TestSpans(t *testing.T) {
	pos := types.Span{
		From: types.Position{Line: 3, Column: 1},
		To:   types.Position{Line: 3, Column: 9},
	}

	var n Node = DoWhileStmt{Pos: pos}
	if n.Span() != pos {
		t.Errorf("Span() = %v, want %v", n.Span(), pos)
	}
}
