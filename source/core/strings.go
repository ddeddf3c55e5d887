package core

import (
	"fmt"
	"strings"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/reader"
	"github.com/ensemble-lang/ensemble/source/values"
)

func btPrStr(args ...values.Value) (values.Value, error) {
	return values.MakeString(printer.PrintList(args, true, " ")), nil
}

func btStr(args ...values.Value) (values.Value, error) {
	return values.MakeString(printer.PrintList(args, false, "")), nil
}

func (b *builtins) btPrn(args ...values.Value) (values.Value, error) {
	fmt.Fprintln(b.out, printer.PrintList(args, true, " "))
	return values.NIL, nil
}

func (b *builtins) btPrintln(args ...values.Value) (values.Value, error) {
	fmt.Fprintln(b.out, printer.PrintList(args, false, " "))
	return values.NIL, nil
}

// Unlike a syntax error in the source, a failure to read a string at runtime can be caught.
func btReadString(args ...values.Value) (values.Value, error) {
	if e := CheckArity("read-string", args, 1); e != nil {
		return values.NIL, e
	}
	s, e := stringArg("read-string", args, 0)
	if e != nil {
		return values.NIL, e
	}
	v, e := reader.Read(s)
	if e != nil {
		return values.NIL, err.CreateErr("built/read", nil, e.Error())
	}
	return v, nil
}

func btTrim(args ...values.Value) (values.Value, error) {
	if e := CheckArity("trim", args, 1); e != nil {
		return values.NIL, e
	}
	s, e := stringArg("trim", args, 0)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeString(strings.TrimSpace(s)), nil
}

// (join coll) joins the printed elements with spaces, (join coll sep) with sep.
func btJoin(args ...values.Value) (values.Value, error) {
	if e := checkArityBetween("join", args, 1, 2); e != nil {
		return values.NIL, e
	}
	items, e := seqArg("join", args, 0)
	if e != nil {
		return values.NIL, e
	}
	sep := " "
	if len(args) == 2 {
		if sep, e = stringArg("join", args, 1); e != nil {
			return values.NIL, e
		}
	}
	return values.MakeString(printer.PrintList(items, false, sep)), nil
}

func btSymbol(args ...values.Value) (values.Value, error) {
	if e := CheckArity("symbol", args, 1); e != nil {
		return values.NIL, e
	}
	s, e := stringArg("symbol", args, 0)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeSymbol(s), nil
}

func btKeyword(args ...values.Value) (values.Value, error) {
	if e := CheckArity("keyword", args, 1); e != nil {
		return values.NIL, e
	}
	if args[0].T == values.KEYWORD {
		return args[0], nil
	}
	s, e := stringArg("keyword", args, 0)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeKeyword(strings.TrimPrefix(s, ":")), nil
}
