package err

import (
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/token"
	"github.com/ensemble-lang/ensemble/source/values"
)

// The one error type of the interpreter. Errors made from the catalogue have the message as their
// payload; errors made by 'throw' have whatever was thrown.
type Error struct {
	ErrorId string
	Message string
	Args    []any
	Payload values.Value
	Token   *token.Token
}

type ErrorCreator struct {
	Message     func(tok *token.Token, args ...any) string
	Explanation func(tok *token.Token, args ...any) string
}

// The id of errors thrown from inside the language.
const THROWN = "eval/throw"

func (e *Error) Error() string {
	return e.Message
}

// Read errors are reported to whoever called the reader. Everything else can be caught by 'try*'.
func (e *Error) Catchable() bool {
	return !IsReadError(e.ErrorId)
}

func IsReadError(id string) bool {
	return len(id) >= 5 && id[:5] == "read/"
}

// Value is the error as the language sees it.
func (e *Error) Value() values.Value {
	return values.MakeError(e.Payload)
}

// Explain gives the longer account of the error that the REPL's ':why' command shows.
func (e *Error) Explain() string {
	creator, ok := ErrorCreatorMap[e.ErrorId]
	if !ok || creator.Explanation == nil {
		return "There is no further explanation of this error."
	}
	return creator.Explanation(e.Token, e.Args...)
}

// Describe is what the REPL shows for an uncaught error: the message, the position if we know
// it, and the id to look up.
func (e *Error) Describe() string {
	return "[" + e.ErrorId + "] " + e.Message + text.DescribePos(e.Token)
}

// CreateErr makes an error from the catalogue. An id which isn't in the catalogue is a bug in
// the interpreter and we say so rather than crash.
func CreateErr(errorId string, tok *token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorId]
	if !ok {
		msg := "interpreter error: unknown error id " + text.Emph(errorId)
		return &Error{ErrorId: "err/misdirect", Message: msg, Args: args, Payload: values.MakeString(msg), Token: tok}
	}
	msg := creator.Message(tok, args...)
	return &Error{ErrorId: errorId, Message: msg, Args: args, Payload: values.MakeString(msg), Token: tok}
}

// Throw makes the error raised by the 'throw' built-in. Throwing an error value throws its payload
// again rather than nesting it.
func Throw(payload values.Value) *Error {
	if payload.T == values.ERROR {
		payload = payload.V.(values.Value)
	}
	msg := ErrorCreatorMap[THROWN].Message(nil, printer.Print(payload, true))
	return &Error{ErrorId: THROWN, Message: msg, Args: []any{printer.Print(payload, true)}, Payload: payload}
}
