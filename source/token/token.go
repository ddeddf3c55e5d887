package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Bare runs of characters: symbols, numbers, keywords, nil, true, false.
	ATOM   = "ATOM"
	STRING = "string" // "foo", possibly unterminated.

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"

	// Reader macros
	QUOTE          = "'"
	QUASIQUOTE     = "`"
	UNQUOTE        = "~"
	SPLICE_UNQUOTE = "~@"
	META           = "^"
	DEREF          = "@"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

// The symbol each reader macro expands into.
var readerMacros = map[TokenType]string{
	QUOTE:          "quote",
	QUASIQUOTE:     "quasiquote",
	UNQUOTE:        "unquote",
	SPLICE_UNQUOTE: "splice-unquote",
	META:           "with-meta",
	DEREF:          "deref",
}

func LookupReaderMacro(t TokenType) (string, bool) {
	sym, ok := readerMacros[t]
	return sym, ok
}

func IsOpener(t TokenType) bool {
	return t == LPAREN || t == LBRACK || t == LBRACE
}

func IsCloser(t TokenType) bool {
	return t == RPAREN || t == RBRACK || t == RBRACE
}

// Closer returns the token type which ends a sequence begun by t.
func Closer(t TokenType) TokenType {
	switch t {
	case LPAREN:
		return RPAREN
	case LBRACK:
		return RBRACK
	case LBRACE:
		return RBRACE
	}
	return ILLEGAL
}
