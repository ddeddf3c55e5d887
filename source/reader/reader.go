// Package reader turns source text into values. Reader macros such as 'x and @x are expanded here
// into ordinary lists, so the evaluator never sees them.
package reader

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/lexer"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/token"
	"github.com/ensemble-lang/ensemble/source/values"
)

var numberRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

type Reader struct {
	tokens []token.Token
	pos    int
	eof    token.Token
}

func New(source, input string) *Reader {
	l := lexer.NewLexer(source, input)
	rdr := &Reader{}
	for tok := l.NextToken(); ; tok = l.NextToken() {
		if tok.Type == token.EOF {
			rdr.eof = tok
			break
		}
		rdr.tokens = append(rdr.tokens, tok)
	}
	return rdr
}

// Read reads the first form of the input. Input with no forms in it reads as nil.
func Read(input string) (values.Value, error) {
	rdr := New("", input)
	if rdr.AtEnd() {
		return values.NIL, nil
	}
	return rdr.ReadForm()
}

// ReadAll reads every form of the input.
func ReadAll(source, input string) ([]values.Value, error) {
	rdr := New(source, input)
	result := []values.Value{}
	for !rdr.AtEnd() {
		form, e := rdr.ReadForm()
		if e != nil {
			return nil, e
		}
		result = append(result, form)
	}
	return result, nil
}

func (rdr *Reader) AtEnd() bool {
	return rdr.pos >= len(rdr.tokens)
}

func (rdr *Reader) Peek() *token.Token {
	if rdr.AtEnd() {
		return &rdr.eof
	}
	return &rdr.tokens[rdr.pos]
}

func (rdr *Reader) Next() *token.Token {
	tok := rdr.Peek()
	if !rdr.AtEnd() {
		rdr.pos++
	}
	return tok
}

func (rdr *Reader) ReadForm() (values.Value, error) {
	result, e := rdr.readForm()
	if settings.SHOW_READER && e == nil {
		settings.Log.WithField("line", rdr.Peek().Line).Trace("read " + printer.Print(result, true))
	}
	return result, e
}

func (rdr *Reader) readForm() (values.Value, error) {
	tok := rdr.Peek()
	switch {
	case tok.Type == token.EOF:
		return values.NIL, err.CreateErr("read/eof/seq", tok, "form")
	case token.IsOpener(tok.Type):
		return rdr.ReadSequence()
	case token.IsCloser(tok.Type):
		return values.NIL, err.CreateErr("read/unexpected", tok, tok.Literal)
	}
	if sym, ok := token.LookupReaderMacro(tok.Type); ok {
		return rdr.readMacro(sym)
	}
	return rdr.ReadAtom()
}

// 'x becomes (quote x), and so on. The metadata macro is the odd one out: ^m x becomes (with-meta x m).
func (rdr *Reader) readMacro(sym string) (values.Value, error) {
	macroTok := rdr.Next()
	first, e := rdr.readMacroArgument(macroTok)
	if e != nil {
		return values.NIL, e
	}
	if macroTok.Type != token.META {
		return values.MakeList(values.MakeSymbol(sym), first), nil
	}
	second, e := rdr.readMacroArgument(macroTok)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeList(values.MakeSymbol(sym), second, first), nil
}

func (rdr *Reader) readMacroArgument(macroTok *token.Token) (values.Value, error) {
	if rdr.AtEnd() {
		return values.NIL, err.CreateErr("read/eof/macro", rdr.Peek(), macroTok.Literal)
	}
	return rdr.readForm()
}

// ReadSequence reads a list, vector or map, starting at its opening bracket.
func (rdr *Reader) ReadSequence() (values.Value, error) {
	opener := rdr.Next()
	closer := token.Closer(opener.Type)
	items := []values.Value{}
	for {
		tok := rdr.Peek()
		if tok.Type == token.EOF {
			return values.NIL, err.CreateErr("read/eof/seq", tok, string(closer))
		}
		if tok.Type == closer {
			rdr.Next()
			break
		}
		if token.IsCloser(tok.Type) {
			return values.NIL, err.CreateErr("read/unexpected", tok, tok.Literal)
		}
		item, e := rdr.readForm()
		if e != nil {
			return values.NIL, e
		}
		items = append(items, item)
	}
	switch opener.Type {
	case token.LPAREN:
		return values.MakeList(items...), nil
	case token.LBRACK:
		return values.MakeVector(items...), nil
	}
	return makeMap(opener, items)
}

// A key with nothing after it is bound to nil.
func makeMap(tok *token.Token, items []values.Value) (values.Value, error) {
	m := values.NewMap()
	for i := 0; i < len(items); i += 2 {
		val := values.NIL
		if i+1 < len(items) {
			val = items[i+1]
		}
		if !m.Assoc(items[i], val) {
			return values.NIL, err.CreateErr("read/key", tok, printer.Print(items[i], true))
		}
	}
	return values.Value{T: values.MAP, V: m}, nil
}

func (rdr *Reader) ReadAtom() (values.Value, error) {
	tok := rdr.Next()
	if tok.Type == token.STRING {
		if !lexer.IsTerminated(tok.Literal) {
			return values.NIL, err.CreateErr("read/eof/string", tok)
		}
		return values.MakeString(Unescape(tok.Literal[1 : len(tok.Literal)-1])), nil
	}
	lit := tok.Literal
	switch lit {
	case "nil", "null":
		return values.NIL, nil
	case "true":
		return values.TRUE, nil
	case "false":
		return values.FALSE, nil
	}
	if numberRegex.MatchString(lit) {
		f, _ := strconv.ParseFloat(lit, 64)
		return values.MakeNumber(f), nil
	}
	if strings.HasPrefix(lit, ":") {
		return values.MakeKeyword(lit[1:]), nil
	}
	// Trailing colons make keywords too, so {name: "x"} works.
	if len(lit) > 1 && strings.HasSuffix(lit, ":") {
		return values.MakeKeyword(lit[:len(lit)-1]), nil
	}
	return values.MakeSymbol(lit), nil
}

// Unescape undoes the escaping of a string literal, without its quotes: \n is a newline, and a
// backslash before anything else stands for that thing.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r == 'n' {
				sb.WriteRune('\n')
			} else {
				sb.WriteRune(r)
			}
			escaped = false
		case r == '\\':
			escaped = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
