package types

import "testing"

func TestKindNames(t *testing.T) {
	cases := map[TokenKind]string{
		EOF:       "EOF",
		IDENT:     "IDENT",
		WHILE:     "WHILE",
		DO:        "DO",
		INCREMENT: "INCREMENT",
		DECREMENT: "DECREMENT",
		LPAREN:    "LPAREN",
		SEMICOLON: "SEMICOLON",
	}

	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Filename: "loop.bminor"}
	if p.String() != "loop.bminor:3:7" {
		t.Errorf("Position.String() = %q", p.String())
	}

	anon := Position{Line: 1, Column: 1}
	if anon.String() != "<unknown>:1:1" {
		t.Errorf("Position.String() = %q", anon.String())
	}
}

func TestSingleCharSpan(t *testing.T) {
	p := Position{Line: 2, Column: 4}
	s := SingleCharSpan(p)
	if s.From != p || s.To != p {
		t.Errorf("SingleCharSpan(%v) = %v", p, s)
	}
}
