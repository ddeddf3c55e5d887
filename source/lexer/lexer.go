package lexer

import (
	"github.com/sirupsen/logrus"

	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/token"
)

// The lexer turns source text into tokens. It never fails: an unterminated string becomes a STRING
// token without its closing quote, and it is up to the reader to complain about it.
type Lexer struct {
	runes  *RuneSupplier
	tstart int // the value of char at the start of a token
	lineNo int
	source string
}

func NewLexer(source, input string) *Lexer {
	return &Lexer{
		runes:  NewRuneSupplier([]rune(input)),
		source: source,
		lineNo: 1,
	}
}

// Returns the next token, or an EOF token once the input is used up.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	l.lineNo, l.tstart = l.runes.Position()
	if l.runes.AtEnd() {
		return l.MakeToken(token.EOF, "EOF")
	}
	switch l.runes.CurrentRune() {
	case '(':
		return l.NewToken(token.LPAREN, "(")
	case ')':
		return l.NewToken(token.RPAREN, ")")
	case '[':
		return l.NewToken(token.LBRACK, "[")
	case ']':
		return l.NewToken(token.RBRACK, "]")
	case '{':
		return l.NewToken(token.LBRACE, "{")
	case '}':
		return l.NewToken(token.RBRACE, "}")
	case '\'':
		return l.NewToken(token.QUOTE, "'")
	case '`':
		return l.NewToken(token.QUASIQUOTE, "`")
	case '^':
		return l.NewToken(token.META, "^")
	case '@':
		return l.NewToken(token.DEREF, "@")
	case '~':
		if l.runes.PeekRune() == '@' {
			l.runes.Next()
			return l.NewToken(token.SPLICE_UNQUOTE, "~@")
		}
		return l.NewToken(token.UNQUOTE, "~")
	case '"':
		lit, _ := l.runes.ReadStringLiteral()
		return l.NewToken(token.STRING, lit)
	}
	return l.NewToken(token.ATOM, l.runes.ReadBareRun())
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		l.runes.SkipWhitespace()
		if l.runes.AtEnd() || l.runes.CurrentRune() != ';' {
			return
		}
		l.runes.ReadComment()
		l.runes.Next()
	}
}

// NewToken steps past the last rune of the token and then makes it.
func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *Lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	_, chNo := l.runes.Position()
	tok := token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
	if settings.SHOW_LEXER {
		settings.Log.WithFields(logrus.Fields{"type": tok.Type, "line": tok.Line, "ch": tok.ChStart}).Trace(tok.Literal)
	}
	return tok
}

// Lex returns all the tokens of the input, not including the final EOF.
func Lex(source, input string) []token.Token {
	l := NewLexer(source, input)
	result := []token.Token{}
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		result = append(result, tok)
	}
	return result
}

// Tokenize is Lex with only the literals.
func Tokenize(input string) []string {
	toks := Lex("", input)
	result := make([]string, 0, len(toks))
	for _, tok := range toks {
		result = append(result, tok.Literal)
	}
	return result
}

// Unfinished says whether the input looks like the start of something longer: a string with
// no closing quote, or more opening brackets than closing ones. The REPL uses it to decide
// whether to ask for another line.
func Unfinished(input string) bool {
	depth := 0
	l := NewLexer("", input)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		switch {
		case token.IsOpener(tok.Type):
			depth++
		case token.IsCloser(tok.Type):
			depth--
		case tok.Type == token.STRING:
			if !IsTerminated(tok.Literal) {
				return true
			}
		}
	}
	return depth > 0
}

// IsTerminated says whether the raw literal of a STRING token has its closing quote.
func IsTerminated(lit string) bool {
	runes := []rune(lit)
	if len(runes) < 2 || runes[len(runes)-1] != '"' {
		return false
	}
	escaped := false
	for _, r := range runes[1 : len(runes)-1] {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		}
	}
	return !escaped
}
