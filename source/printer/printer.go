// Package printer turns values back into text. In readable mode the output of Print can be given
// back to the reader to get an equal value, for everything except functions, atoms and errors.
package printer

import (
	"math"
	"strconv"
	"strings"

	"github.com/ensemble-lang/ensemble/source/values"
)

func Print(v values.Value, readable bool) string {
	var sb strings.Builder
	write(&sb, v, readable)
	return sb.String()
}

// PrintList prints each value and joins them with the separator.
func PrintList(vs []values.Value, readable bool, sep string) string {
	strs := make([]string, 0, len(vs))
	for _, v := range vs {
		strs = append(strs, Print(v, readable))
	}
	return strings.Join(strs, sep)
}

func write(sb *strings.Builder, v values.Value, readable bool) {
	switch v.T {
	case values.NULL:
		sb.WriteString("nil")
	case values.BOOL:
		sb.WriteString(strconv.FormatBool(v.V.(bool)))
	case values.NUMBER:
		sb.WriteString(FormatNumber(v.V.(float64)))
	case values.STRING:
		if readable {
			sb.WriteString(Escape(v.V.(string)))
		} else {
			sb.WriteString(v.V.(string))
		}
	case values.KEYWORD:
		sb.WriteString(":" + v.V.(string))
	case values.SYMBOL:
		sb.WriteString(v.V.(string))
	case values.LIST:
		writeSeq(sb, values.Items(v), readable, "(", ")")
	case values.VECTOR:
		writeSeq(sb, values.Items(v), readable, "[", "]")
	case values.MAP:
		sb.WriteString("{")
		first := true
		v.V.(*values.Map).Range(func(key, val values.Value) {
			if !first {
				sb.WriteString(" ")
			}
			first = false
			write(sb, key, readable)
			sb.WriteString(" ")
			write(sb, val, readable)
		})
		sb.WriteString("}")
	case values.FUNC:
		if v.V.(*values.Function).IsMacro {
			sb.WriteString("#<macro>")
		} else {
			sb.WriteString("#<fn>")
		}
	case values.ATOM:
		sb.WriteString("(atom ")
		write(sb, v.V.(*values.Atom).Value, readable)
		sb.WriteString(")")
	case values.ERROR:
		sb.WriteString("#<error ")
		write(sb, v.V.(values.Value), readable)
		sb.WriteString(">")
	default:
		sb.WriteString("#<" + v.T.String() + ">")
	}
}

func writeSeq(sb *strings.Builder, items []values.Value, readable bool, left, right string) {
	sb.WriteString(left)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(" ")
		}
		write(sb, item, readable)
	}
	sb.WriteString(right)
}

// Escape quotes a string the way the reader expects to find it.
func Escape(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// FormatNumber gives the shortest decimal that reads back as the same number: 7 rather than 7.0,
// and exponent notation only for very large magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
