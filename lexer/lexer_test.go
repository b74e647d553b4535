package lexer

import (
	"strings"
	"testing"

	"github.com/ztrue/tracerr"

	"github.com/Dfsantana1/sintactico/errors"
	"github.com/Dfsantana1/sintactico/types"
)

type want struct {
	kind   types.TokenKind
	lexeme string
}

func lexAll(t *testing.T, source string) []types.Token {
	t.Helper()

	tokens, err := NewLexer(strings.NewReader(source), "test.bminor").LexAll()
	if err != nil {
		t.Fatalf("LexAll(%q): %s", source, err)
	}
	return tokens
}

func lexFails(t *testing.T, source string) errors.Diagnostic {
	t.Helper()

	_, err := NewLexer(strings.NewReader(source), "test.bminor").LexAll()
	if err == nil {
		t.Fatalf("LexAll(%q): expected an error", source)
	}

	diag, ok := tracerr.Unwrap(err).(errors.Diagnostic)
	if !ok {
		t.Fatalf("LexAll(%q): error %T is not a Diagnostic", source, err)
	}
	return diag
}

func checkTokens(t *testing.T, source string, wants []want) {
	t.Helper()

	tokens := lexAll(t, source)
	wants = append(wants, want{types.EOF, ""})

	if len(tokens) != len(wants) {
		t.Fatalf("lexing %q: got %d tokens, want %d: %v", source, len(tokens), len(wants), tokens)
	}
	for i, w := range wants {
		if tokens[i].Kind != w.kind || tokens[i].Lexeme != w.lexeme {
			t.Errorf("lexing %q: token %d = (%s, %q), want (%s, %q)",
				source, i, tokens[i].Kind, tokens[i].Lexeme, w.kind, w.lexeme)
		}
	}
}

func TestTokens(t *testing.T) {
	cases := []struct {
		source string
		wants  []want
	}{
		{
			"x: integer = 5;",
			[]want{
				{types.IDENT, "x"}, {types.COLON, ":"}, {types.INTEGER_TYPE, "integer"},
				{types.ASSIGN, "="}, {types.INTEGER, "5"}, {types.SEMICOLON, ";"},
			},
		},
		{
			"while do if else for return print",
			[]want{
				{types.WHILE, "while"}, {types.DO, "do"}, {types.IF, "if"},
				{types.ELSE, "else"}, {types.FOR, "for"}, {types.RETURN, "return"},
				{types.PRINT, "print"},
			},
		},
		{
			"== != <= >= < > && || ! =>",
			[]want{
				{types.EQ, "=="}, {types.NE, "!="}, {types.LE, "<="}, {types.GE, ">="},
				{types.LT, "<"}, {types.GT, ">"}, {types.AND, "&&"}, {types.OR, "||"},
				{types.NOT, "!"}, {types.ARROW, "=>"},
			},
		},
		{
			"3.14 10 0.5 true false",
			[]want{
				{types.FLOAT, "3.14"}, {types.INTEGER, "10"}, {types.FLOAT, "0.5"},
				{types.TRUE, "true"}, {types.FALSE, "false"},
			},
		},
		{
			`"hi\n" 'a' '\n'`,
			[]want{
				{types.STRING, `"hi\n"`}, {types.CHAR, "'a'"}, {types.CHAR, `'\n'`},
			},
		},
		{
			"a % b * c / d",
			[]want{
				{types.IDENT, "a"}, {types.MODULO, "%"}, {types.IDENT, "b"},
				{types.MULTIPLY, "*"}, {types.IDENT, "c"}, {types.DIVIDE, "/"},
				{types.IDENT, "d"},
			},
		},
	}

	for _, c := range cases {
		checkTokens(t, c.source, c.wants)
	}
}

// ++ and -- are matched greedily as single atomic tokens; whitespace
// between two + never merges them back together.
func TestIncrementDecrementGreedy(t *testing.T) {
	cases := []struct {
		source string
		wants  []want
	}{
		{"x++", []want{{types.IDENT, "x"}, {types.INCREMENT, "++"}}},
		{"--x", []want{{types.DECREMENT, "--"}, {types.IDENT, "x"}}},
		{"x+ +y", []want{{types.IDENT, "x"}, {types.PLUS, "+"}, {types.PLUS, "+"}, {types.IDENT, "y"}}},
		{"x + +y", []want{{types.IDENT, "x"}, {types.PLUS, "+"}, {types.PLUS, "+"}, {types.IDENT, "y"}}},
		{"x+++y", []want{{types.IDENT, "x"}, {types.INCREMENT, "++"}, {types.PLUS, "+"}, {types.IDENT, "y"}}},
		{"a---b", []want{{types.IDENT, "a"}, {types.DECREMENT, "--"}, {types.MINUS, "-"}, {types.IDENT, "b"}}},
		{"a - -b", []want{{types.IDENT, "a"}, {types.MINUS, "-"}, {types.MINUS, "-"}, {types.IDENT, "b"}}},
	}

	for _, c := range cases {
		checkTokens(t, c.source, c.wants)
	}
}

func TestComments(t *testing.T) {
	checkTokens(t, "a // rest of line\nb /* in\nside */ c",
		[]want{{types.IDENT, "a"}, {types.IDENT, "b"}, {types.IDENT, "c"}})
}

func TestPositions(t *testing.T) {
	tokens := lexAll(t, "while x < 10) { }")

	x := tokens[1]
	if x.Kind != types.IDENT || x.Lexeme != "x" {
		t.Fatalf("second token = (%s, %q), want (IDENT, \"x\")", x.Kind, x.Lexeme)
	}
	if x.Location.From.Line != 1 || x.Location.From.Column != 7 {
		t.Errorf("x starts at %d:%d, want 1:7", x.Location.From.Line, x.Location.From.Column)
	}

	tokens = lexAll(t, "a\n  b")
	b := tokens[1]
	if b.Location.From.Line != 2 || b.Location.From.Column != 3 {
		t.Errorf("b starts at %d:%d, want 2:3", b.Location.From.Line, b.Location.From.Column)
	}
}

// Re-lexing any token's recorded lexeme reproduces an identical token.
func TestLexemeRoundTrip(t *testing.T) {
	source := `count: integer = 5;
do { count = count - 1; x = ++y; s = "a\tb"; f = 3.5; } while (count > 0);`

	for _, tok := range lexAll(t, source) {
		if tok.Kind == types.EOF {
			continue
		}

		again := lexAll(t, tok.Lexeme)
		if len(again) != 2 {
			t.Fatalf("re-lexing %q: got %d tokens, want 2", tok.Lexeme, len(again))
		}
		if again[0].Kind != tok.Kind || again[0].Lexeme != tok.Lexeme {
			t.Errorf("re-lexing %q: got (%s, %q), want (%s, %q)",
				tok.Lexeme, again[0].Kind, again[0].Lexeme, tok.Kind, tok.Lexeme)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		source string
		line   int
		column int
	}{
		{"x = @;", 1, 5},
		{"a & b", 1, 3},
		{"a | b", 1, 3},
		{"x = $y;\n", 1, 5},
		{"\ny = #;", 2, 5},
	}

	for _, c := range cases {
		diag := lexFails(t, c.source)
		if diag.Kind() != errors.KindLex {
			t.Errorf("lexing %q: kind = %q, want %q", c.source, diag.Kind(), errors.KindLex)
		}
		from := diag.Where().From
		if from.Line != c.line || from.Column != c.column {
			t.Errorf("lexing %q: error at %d:%d, want %d:%d",
				c.source, from.Line, from.Column, c.line, c.column)
		}
	}
}

// A dot with no digit after it is the illegal character, reported as a
// positioned diagnostic rather than a leaked bufio error.
func TestIntegerDotNonDigit(t *testing.T) {
	cases := []struct {
		source string
		line   int
		column int
	}{
		{"x = 10.y;", 1, 7},
		{"x = 10.", 1, 7},
		{"x = 1.2.3;", 1, 8},
	}

	for _, c := range cases {
		diag := lexFails(t, c.source)
		if diag.Kind() != errors.KindLex {
			t.Errorf("lexing %q: kind = %q, want %q", c.source, diag.Kind(), errors.KindLex)
		}
		if _, ok := diag.(errors.UnexpectedCharacter); !ok {
			t.Errorf("lexing %q: diagnostic is %T, want UnexpectedCharacter", c.source, diag)
		}
		from := diag.Where().From
		if from.Line != c.line || from.Column != c.column {
			t.Errorf("lexing %q: error at %d:%d, want %d:%d",
				c.source, from.Line, from.Column, c.line, c.column)
		}
	}
}

// A char literal holds exactly one character or one escape.
func TestCharLiteralShape(t *testing.T) {
	checkTokens(t, `'a' '\\' '\''`,
		[]want{{types.CHAR, "'a'"}, {types.CHAR, `'\\'`}, {types.CHAR, `'\''`}})

	for _, source := range []string{"c = '';", "c = 'ab';", `c = '\n1';`} {
		diag := lexFails(t, source)
		if _, ok := diag.(errors.InvalidCharLiteral); !ok {
			t.Errorf("lexing %q: diagnostic is %T, want InvalidCharLiteral", source, diag)
		}
		if diag.Where().From.Column != 5 {
			t.Errorf("lexing %q: error at column %d, want 5", source, diag.Where().From.Column)
		}
	}
}

func TestUnterminated(t *testing.T) {
	for _, source := range []string{`"open`, `'a`, "\"raw\nnewline\"", "/* never closed"} {
		diag := lexFails(t, source)
		if diag.Kind() != errors.KindLex {
			t.Errorf("lexing %q: kind = %q, want %q", source, diag.Kind(), errors.KindLex)
		}
	}
}

// The stream is finite: an EOF token terminates it exactly once.
func TestEOFTerminates(t *testing.T) {
	tokens := lexAll(t, "")
	if len(tokens) != 1 || tokens[0].Kind != types.EOF {
		t.Fatalf("lexing empty input: got %v, want a single EOF", tokens)
	}

	l := NewLexer(strings.NewReader("x"), "test.bminor")
	l.Lex()
	for i := 0; i < 3; i++ {
		if tok := l.Lex(); tok.Kind != types.EOF {
			t.Fatalf("Lex after end = %s, want EOF", tok.Kind)
		}
	}
}
