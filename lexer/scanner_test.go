package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlox-go/errs"
	"jlox-go/token"
)

func scan(t *testing.T, source string) ([]token.Token, *errs.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := errs.New(&buf)
	toks := New(source, r).ScanTokens()
	return toks, r
}

func TestScanTotality_EmptySource(t *testing.T) {
	toks, r := scan(t, "")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.GreaterOrEqual(t, toks[0].Line, 1)
	assert.False(t, r.HadError)
}

func TestSingleAndTwoCharTokens(t *testing.T) {
	toks, r := scan(t, "(){},.-+;*!=<=>=!<>=")
	require.False(t, r.HadError)
	kinds := []token.Kind{}
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Contains(t, kinds, token.LEFT_PAREN)
	assert.Contains(t, kinds, token.BANG_EQUAL)
	assert.Contains(t, kinds, token.LESS_EQUAL)
	assert.Contains(t, kinds, token.GREATER_EQUAL)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestLineComment(t *testing.T) {
	toks, r := scan(t, "// comment\nprint 1;")
	require.False(t, r.HadError)
	require.Equal(t, token.PRINT, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Line)
}

func TestBlockComment(t *testing.T) {
	toks, r := scan(t, "/* multi\nline */ print 1;")
	require.False(t, r.HadError)
	require.Equal(t, token.PRINT, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Line)
}

func TestUnterminatedBlockCommentReportsError(t *testing.T) {
	_, r := scan(t, "/* never closes")
	assert.True(t, r.HadError)
}

func TestUnterminatedStringReportsError(t *testing.T) {
	toks, r := scan(t, `"unterminated`)
	assert.True(t, r.HadError)
	// no STRING token is emitted
	for _, tk := range toks {
		assert.NotEqual(t, token.STRING, tk.Kind)
	}
}

func TestStringSpansLines(t *testing.T) {
	toks, r := scan(t, "\"a\nb\"")
	require.False(t, r.HadError)
	require.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Literal.Text)
	assert.Equal(t, 1, toks[0].Line) // tagged with the opening line, not the closing one
}

func TestNumberLiteral(t *testing.T) {
	toks, r := scan(t, "123 45.67 .5 5.")
	require.False(t, r.HadError)
	require.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, 123.0, toks[0].Literal.Number)
	require.Equal(t, token.NUMBER, toks[1].Kind)
	assert.Equal(t, 45.67, toks[1].Literal.Number)
	// leading '.' is not part of a number
	assert.Equal(t, token.DOT, toks[2].Kind)
	// trailing '.' after a number is not consumed into it
	assert.Equal(t, token.NUMBER, toks[4].Kind)
	assert.Equal(t, token.DOT, toks[5].Kind)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, r := scan(t, "var x_1 = foo and while")
	require.False(t, r.HadError)
	assert.Equal(t, token.VAR, toks[0].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "x_1", toks[1].Lexeme)
	assert.Equal(t, token.EQUAL, toks[2].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[3].Kind)
	assert.Equal(t, token.AND, toks[4].Kind)
	assert.Equal(t, token.WHILE, toks[5].Kind)
}

func TestUnexpectedCharacterReportsErrorAndContinues(t *testing.T) {
	toks, r := scan(t, "@ print 1;")
	require.True(t, r.HadError)
	// scanning continues past the bad byte
	require.NotEmpty(t, toks)
	assert.Equal(t, token.PRINT, toks[0].Kind)
}

func TestLineAccounting(t *testing.T) {
	toks, r := scan(t, "var a = 1;\nvar b = 2;\nprint a;")
	require.False(t, r.HadError)
	require.Len(t, toks, 14)
	assert.Equal(t, 1, toks[0].Line)           // var
	assert.Equal(t, 1, toks[4].Line)           // ;
	assert.Equal(t, 2, toks[5].Line)           // var
	assert.Equal(t, 3, toks[len(toks)-2].Line) // ;
	assert.Equal(t, 3, toks[len(toks)-1].Line) // EOF
}
