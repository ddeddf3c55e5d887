package hub

import (
	"io"
	"regexp"
	"strings"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/evaluator"
	"github.com/ensemble-lang/ensemble/source/lexer"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/reader"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/values"
)

// The hub sits between the REPL and the evaluator. It owns the session's environment, knows the
// few commands that begin with a colon, and remembers the last error so that ':why' can explain it.
type Hub struct {
	out       io.Writer
	env       *values.Environment
	lastError error
	peek      bool
}

func New(out io.Writer) *Hub {
	return &Hub{out: out, env: evaluator.NewEnvironment(out)}
}

func (hub *Hub) Env() *values.Environment {
	return hub.env
}

// LastError returns the error from the most recent input, or nil if it succeeded.
func (hub *Hub) LastError() error {
	return hub.lastError
}

var blankOrComment = regexp.MustCompile(`^\s*(|;.*)$`)

// Do takes the input from the REPL and interprets it as a hub command if it begins with a colon,
// and otherwise as forms to be evaluated. It returns true if the user wants to quit.
func (hub *Hub) Do(line string) bool {
	if blankOrComment.MatchString(line) {
		return false
	}
	hubWords := strings.Fields(line)
	if strings.HasPrefix(hubWords[0], ":") && len(hubWords) == 1 {
		return hub.DoHubCommand(hubWords[0][1:])
	}
	if hub.peek {
		hub.peekAt(line)
	}
	result, e := evaluator.EvalString("REPL input", line, hub.env)
	hub.lastError = e
	if e != nil {
		hub.reportError(e)
		return false
	}
	hub.WriteString(printer.Print(result, true) + "\n")
	return false
}

func (hub *Hub) DoHubCommand(verb string) bool {
	switch verb {
	case "quit", "q":
		hub.quit()
		return true
	case "help":
		hub.WriteString(text.HELP)
	case "env":
		hub.listEnv()
	case "why":
		hub.why()
	case "peek":
		hub.peek = !hub.peek
		hub.WriteString(text.OK + "\n")
	default:
		hub.WriteError("the hub doesn't know the command " + text.Emph(":"+verb) + ". Try " + text.Emph(":help") + ".")
	}
	return false
}

func (hub *Hub) reportError(e error) {
	if ee, ok := e.(*err.Error); ok {
		settings.Log.WithField("id", ee.ErrorId).Debug("uncaught error")
		hub.WriteString(text.Red(ee.Describe()) + "\n")
		return
	}
	settings.Log.WithError(e).Debug("uncaught error")
	hub.WriteString(text.Red(e.Error()) + "\n")
}

func (hub *Hub) why() {
	switch e := hub.lastError.(type) {
	case nil:
		hub.WriteError("there are no recent errors.")
	case *err.Error:
		hub.WriteString("\n" + text.BULLET + e.Describe() + "\n\n" + e.Explain() + "\n\n")
	default:
		hub.WriteString("\n" + text.BULLET + e.Error() + "\n\n")
	}
}

func (hub *Hub) listEnv() {
	names := hub.env.Names()
	hub.WriteString("\n")
	for _, name := range names {
		hub.WriteString(text.BULLET + name + "\n")
	}
	hub.WriteString("\n")
}

// With ':peek' turned on, this shows us the wheels going round.
func (hub *Hub) peekAt(line string) {
	for _, tok := range lexer.Lex("REPL input", line) {
		hub.WriteString(text.Gray(string(tok.Type)+" "+text.Emph(tok.Literal)) + "\n")
	}
	forms, e := reader.ReadAll("REPL input", line)
	if e != nil {
		return
	}
	for _, form := range forms {
		hub.WriteString(text.Gray("→ "+printer.Print(form, true)) + "\n")
	}
}

func (hub *Hub) quit() {
	hub.WriteString(text.OK + "\n" + text.Logo() + "Thank you for using Ensemble. Have a nice day!\n\n")
}

func (hub *Hub) WriteError(s string) {
	hub.WriteString(text.Red(text.ERROR) + ": " + s + "\n")
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.out, s)
}
