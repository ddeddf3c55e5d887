package err

import (
	"fmt"
	"strings"

	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/token"
)

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are built, eval, read and sql. Errors in the read category are the only ones that
// 'try*' can't catch.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

var ErrorCreatorMap = map[string]ErrorCreator{

	// TEMPLATE
	"": {
		Message: func(tok *token.Token, args ...any) string {
			return ""
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return ""
		},
	},

	"built/arity": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v expects %v, got %v", emph(args[0]), args[1], args[2])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The built-in function " + emph(args[0]) + " was called with the wrong number of arguments."
		},
	},

	"built/hash": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't hash password: %v", args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The bcrypt library refused the password. The usual reason is that it is longer than 72 bytes."
		},
	},

	"built/index": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("index %v out of range for sequence of length %v", args[0], args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "'nth' counts from 0, so the last element of a sequence of length n has index n - 1."
		},
	},

	"built/key": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't use value of type %v as key of map", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The keys of a map must be strings, keywords or symbols."
		},
	},

	"built/odd": {
		Message: func(tok *token.Token, args ...any) string {
			return emph(args[0]) + " needs a value for every key"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Maps are built from alternating keys and values, so there must be a value for every key."
		},
	},

	"built/read": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v failed: %v", emph("read-string"), args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The string given to 'read-string' isn't well-formed source text. Unlike a syntax error " +
				"in the source itself, this can be caught with 'try*'."
		},
	},

	"built/type": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v expects %v as argument %v, got %v", emph(args[0]), args[1], args[2], emph(args[3]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The built-in function " + emph(args[0]) + " was given a value of a kind it can't do anything with."
		},
	},

	"eval/apply/arity": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("function with parameters %v called with %v", emph(args[0]), text.Plural(args[1].(int), "argument"))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A function defined with 'fn*' must be given one argument for each of its parameters, " +
				"unless it has a parameter after '&', which collects any extra arguments into a list."
		},
	},

	"eval/apply/func": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("trying to apply a value %v which isn't a function", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The first element of a list which is being evaluated is called as a function with the " +
				"others as its arguments. To get the list itself, quote it: '(1 2 3) or (list 1 2 3)."
		},
	},

	"eval/bindings": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("bindings of %v must be a list or vector of name and value pairs", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A 'let*' form looks like (let* (a 1 b 2) body): the bindings alternate between a symbol and the " +
				"expression whose value it is bound to, so there must be an even number of them."
		},
	},

	"eval/catch": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("malformed %v clause", emph("catch*"))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A 'try*' form looks like (try* expr (catch* e handler)), where 'e' is a symbol which is bound " +
				"to the error while the handler is evaluated."
		},
	},

	"eval/form/args": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v expects %v, got %v", emph(args[0]), args[1], args[2])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The special form " + emph(args[0]) + " was written with the wrong number of parts."
		},
	},

	"eval/form/symbol": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v expects a symbol, got %v", emph(args[0]), emph(args[1]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Only symbols can be given values by " + emph(args[0]) + "."
		},
	},

	"eval/depth": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("evaluation nested more than %v deep", args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Calls which are not in tail position each use up a level of nesting, and there were more " +
				fmt.Sprintf("than %v of them at once. ", args[0]) +
				"This is usually a recursive function with no base case, or one which recurses on a value " +
				"that never reaches it. Recursion in tail position doesn't count against the limit."
		},
	},

	"eval/native": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprint(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "This error was returned by the host system while running a built-in function."
		},
	},

	"eval/params": {
		Message: func(tok *token.Token, args ...any) string {
			return "parameters of " + emph("fn*") + " must be a list or vector of symbols"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A function is written (fn* (a b & more) body). The parameters must all be symbols, and '&' " +
				"may only be followed by one more of them."
		},
	},

	"eval/symbol": {
		Message: func(tok *token.Token, args ...any) string {
			return emph(args[0]) + " not found"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The symbol " + emph(args[0]) + " isn't bound in this scope or any scope enclosing it. " +
				"Symbols are bound by 'def!', 'let*', and as the parameters of functions."
		},
	},

	THROWN: {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("uncaught exception: %v", args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A value was thrown with 'throw' and nothing caught it. Wrap the code in " +
				"(try* ... (catch* e ...)) to handle it."
		},
	},

	"read/eof/macro": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("expected a form after %v, got EOF", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The reader macro " + emph(args[0]) + " applies to the form that follows it, but the input " +
				"ran out first."
		},
	},

	"read/eof/seq": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("expected %v, got EOF", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The input ended with a bracket still open. Every '(', '[' and '{' needs its closing partner."
		},
	},

	"read/eof/string": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected '\"', got EOF"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A string was begun with '\"' but never finished. Quotation marks inside a string need " +
				"escaping with a backslash: \\\"."
		},
	},

	"read/key": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't use %v as key of map", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The keys of a map literal must be strings, keywords or symbols."
		},
	},

	"read/unexpected": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected " + emph(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "There is a closing bracket with no opening bracket to match it, or with an opening " +
				"bracket of a different shape."
		},
	},

	"sql/driver": {
		Message: func(tok *token.Token, args ...any) string {
			return "unknown database driver " + emph(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The drivers available are: " + strings.Join(args[1].([]string), ", ") + ". You can ask for " +
				"them by name or by the name of the Go driver."
		},
	},

	"sql/open": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't connect to database: %v", args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The database driver was found but the connection failed. Check the connection string " +
				"and that the server is running."
		},
	},

	"sql/query": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("database error: %v", args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The database rejected the query. The message above is the one it gave."
		},
	},

	"sql/value": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't pass value of type %v to the database", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Only numbers, strings, booleans and nil can be used as query parameters."
		},
	},
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}
