package ast

import (
	"fmt"
	"strconv"
)

// Child pairs a node with the name of the field it was reached through,
// so a renderer can print the tree without knowing any variant.
type Child struct {
	Name string
	Node Node
}

// Label names a node for display. Variants carrying a scalar of interest
// (names, operators, literal values) fold it into the label, the way the
// children walk can't.
func Label(n Node) string {
	switch v := n.(type) {
	case Program:
		return "Program"
	case VarDecl:
		return fmt.Sprintf("VarDecl %s: %s", v.Name, v.Type)
	case ArrayDecl:
		return fmt.Sprintf("ArrayDecl %s: array %s", v.Name, v.Type)
	case FuncDecl:
		return fmt.Sprintf("FuncDecl %s: function %s", v.Name, v.ReturnType)
	case VarParm:
		return fmt.Sprintf("VarParm %s: %s", v.Name, v.Type)
	case ArrayParm:
		return fmt.Sprintf("ArrayParm %s: array %s", v.Name, v.Type)
	case Block:
		return "Block"
	case IfStmt:
		return "IfStmt"
	case WhileStmt:
		return "WhileStmt"
	case DoWhileStmt:
		return "DoWhileStmt"
	case ForStmt:
		return "ForStmt"
	case ReturnStmt:
		return "ReturnStmt"
	case PrintStmt:
		return "PrintStmt"
	case Assignment:
		return "Assignment"
	case ExprStmt:
		return "ExprStmt"
	case BinOper:
		return fmt.Sprintf("BinOper %s", v.Oper)
	case UnaryOper:
		return fmt.Sprintf("UnaryOper %s", v.Oper)
	case PreInc:
		return "PreInc"
	case PreDec:
		return "PreDec"
	case PostInc:
		return "PostInc"
	case PostDec:
		return "PostDec"
	case Integer:
		return fmt.Sprintf("Integer %d", v.Value)
	case Float:
		return fmt.Sprintf("Float %s", strconv.FormatFloat(v.Value, 'g', -1, 64))
	case Boolean:
		return fmt.Sprintf("Boolean %t", v.Value)
	case Char:
		return fmt.Sprintf("Char %q", v.Value)
	case String:
		return fmt.Sprintf("String %q", v.Value)
	case VarLoc:
		return fmt.Sprintf("VarLoc %s", v.Name)
	case ArrayLoc:
		return fmt.Sprintf("ArrayLoc %s", v.Name)
	case FuncCall:
		return fmt.Sprintf("FuncCall %s", v.Name)
	}

	panic(fmt.Sprintf("ast: no label for %T", n))
}

// Children returns a node's subnodes in source order. The walk is
// guaranteed to terminate (the tree has no cycles) and every child of a
// successfully parsed node is non-nil.
func Children(n Node) []Child {
	var out []Child
	add := func(name string, c Node) {
		out = append(out, Child{Name: name, Node: c})
	}
	addAll := func(name string, cs []Expression) {
		for i, c := range cs {
			add(fmt.Sprintf("%s[%d]", name, i), c)
		}
	}

	switch v := n.(type) {
	case Program:
		for i, s := range v.Body {
			add(fmt.Sprintf("body[%d]", i), s)
		}
	case VarDecl:
		if v.Value != nil {
			add("value", v.Value)
		}
	case ArrayDecl:
		addAll("dimensions", v.Dimensions)
		addAll("value", v.Value)
	case FuncDecl:
		for i, p := range v.Params {
			add(fmt.Sprintf("params[%d]", i), p)
		}
		add("body", v.Body)
	case VarParm:
	case ArrayParm:
		addAll("dimensions", v.Dimensions)
	case Block:
		for i, s := range v.Statements {
			add(fmt.Sprintf("statements[%d]", i), s)
		}
	case IfStmt:
		add("condition", v.Condition)
		add("then", v.Then)
		if v.Else != nil {
			add("else", *v.Else)
		}
	case WhileStmt:
		add("condition", v.Condition)
		add("body", v.Body)
	case DoWhileStmt:
		add("body", v.Body)
		add("condition", v.Condition)
	case ForStmt:
		add("init", v.Init)
		add("condition", v.Condition)
		add("update", v.Update)
		add("body", v.Body)
	case ReturnStmt:
		if v.Value != nil {
			add("value", v.Value)
		}
	case PrintStmt:
		add("value", v.Value)
	case Assignment:
		add("location", v.Location)
		add("value", v.Value)
	case ExprStmt:
		add("expr", v.Expr)
	case BinOper:
		add("left", v.Left)
		add("right", v.Right)
	case UnaryOper:
		add("operand", v.Operand)
	case PreInc:
		add("operand", v.Operand)
	case PreDec:
		add("operand", v.Operand)
	case PostInc:
		add("operand", v.Operand)
	case PostDec:
		add("operand", v.Operand)
	case Integer, Float, Boolean, Char, String, VarLoc:
	case ArrayLoc:
		addAll("indices", v.Indices)
	case FuncCall:
		addAll("args", v.Args)
	default:
		panic(fmt.Sprintf("ast: no children walk for %T", n))
	}

	return out
}
