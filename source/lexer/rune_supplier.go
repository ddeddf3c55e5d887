package lexer

import "unicode"

// The RuneSupplier gives us something simpler than a lexer for slurping up string literals,
// comments and bare runs, so that the same functions can be used by the lexer and by the
// REPL when it needs to know whether a line of input is finished.
//
// By convention each Read method leaves the supplier on the last rune of what it read.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *RuneSupplier) AtEnd() bool {
	return rs.pos >= len(rs.code)
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

// Commas count as whitespace.
func IsWhitespace(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Ends a bare run of characters. Note that '~', '^' and '@' are only special at the start of a token.
func IsDelimiter(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '\'', '"', '`', ';':
		return true
	}
	return IsWhitespace(r)
}

func (rs *RuneSupplier) SkipWhitespace() {
	for !rs.AtEnd() && IsWhitespace(rs.CurrentRune()) {
		rs.Next()
	}
}

// Reads to the end of the line, leaving the newline itself unconsumed.
func (rs *RuneSupplier) ReadComment() string {
	result := string(rs.CurrentRune())
	for !(rs.PeekRune() == '\n' || rs.PeekRune() == 0) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

// Reads a string literal starting at the current '"', returning the raw text with its quotes and
// escapes intact. If the input runs out first we return what there is, and false.
func (rs *RuneSupplier) ReadStringLiteral() (string, bool) {
	result := []rune{rs.CurrentRune()}
	for rs.pos+1 < len(rs.code) {
		rs.Next()
		ch := rs.CurrentRune()
		result = append(result, ch)
		if ch == '\\' {
			if rs.pos+1 < len(rs.code) {
				rs.Next()
				result = append(result, rs.CurrentRune())
			}
			continue
		}
		if ch == '"' {
			return string(result), true
		}
	}
	return string(result), false
}

func (rs *RuneSupplier) ReadBareRun() string {
	result := []rune{rs.CurrentRune()}
	for rs.pos+1 < len(rs.code) && !IsDelimiter(rs.PeekRune()) {
		rs.Next()
		result = append(result, rs.CurrentRune())
	}
	return string(result)
}
