// Package render prints a parsed program as a hierarchical tree. It
// consumes only the ast walk contract (Label/Children), so swapping the
// display technology never touches the parser.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dfsantana1/sintactico/ast"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Tree renders the node and its descendants with styled labels.
func Tree(root ast.Node) string {
	return render(root, labelStyle.Render, fieldStyle.Render)
}

// Plain renders the same tree without any styling; the shape is what
// tests assert on.
func Plain(root ast.Node) string {
	identity := func(s ...string) string { return strings.Join(s, " ") }
	return render(root, identity, identity)
}

func render(root ast.Node, label func(...string) string, field func(...string) string) string {
	var b strings.Builder
	writeNode(&b, root, "", "", "", label, field)
	return b.String()
}

func writeNode(b *strings.Builder, n ast.Node, prefix, childPrefix, fieldName string, label func(...string) string, field func(...string) string) {
	b.WriteString(prefix)
	if fieldName != "" {
		b.WriteString(field(fieldName + ":"))
		b.WriteString(" ")
	}
	b.WriteString(label(ast.Label(n)))
	b.WriteString("\n")

	children := ast.Children(n)
	for i, child := range children {
		if i == len(children)-1 {
			writeNode(b, child.Node, childPrefix+"└── ", childPrefix+"    ", child.Name, label, field)
		} else {
			writeNode(b, child.Node, childPrefix+"├── ", childPrefix+"│   ", child.Name, label, field)
		}
	}
}
