package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// help messages, error messages, etc.

import (
	"strconv"
	"strings"

	"github.com/ensemble-lang/ensemble/source/token"
)

const (
	VERSION        = "0.2.0"
	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
	GOOD_BULLET    = "\033[32m  ▪ \033[0m"
	BROKEN         = "\033[31m  ✖ \033[0m"
	PROMPT         = "ensemble→ "
	INDENT_PROMPT  = "        … "
)

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	BLUE   = "\033[34m"
	CYAN   = "\033[36m"
	GRAY   = "\033[37m"

	ERROR = "Error"
	OK    = Green("OK")
)

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Gray(s string) string {
	return GRAY + s + RESET
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 1 {
		padding = ","
	}
	titleText := " Ensemble" + padding + " version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + Cyan("λ") + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + Cyan("λ") + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: ensemble [-v] [-log <level>] [-e <expression>]\n\n" +
	"With no arguments, starts the REPL. REPL commands are:\n\n" +
	"  :help         Shows this message.\n" +
	"  :env          Lists the names bound in the base environment.\n" +
	"  :why          Explains the last error.\n" +
	"  :quit         Leaves the REPL.\n\n"

// Describes where a token is, for error messages.
func DescribePos(tok *token.Token) string {
	if tok == nil {
		return ""
	}
	prettySource := tok.Source
	if prettySource != "" && prettySource != "REPL input" {
		prettySource = "'" + prettySource + "'"
	}
	if tok.Line > 0 {
		result := " at line " + strconv.Itoa(tok.Line) + ":" + strconv.Itoa(tok.ChStart)
		if prettySource != "" {
			result = result + " of " + prettySource
		}
		return result
	}
	if prettySource == "" {
		return ""
	}
	return " in " + prettySource
}

// Describes a token for the purposes of error messages etc.
func DescribeTok(tok *token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.STRING:
		return "<string>"
	}
	return "'" + tok.Literal + "'"
}

// Pluralizes a noun for "expected 1 argument, got 2 arguments" and the like.
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
