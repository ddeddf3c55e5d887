package hub

import (
	"strings"

	"github.com/lmorg/readline"

	"github.com/ensemble-lang/ensemble/source/lexer"
	"github.com/ensemble-lang/ensemble/source/text"
)

// StartHub runs the REPL until the user quits or closes the input. A line with unbalanced brackets
// or an unfinished string gets the indent prompt and is carried on to the next line.
func StartHub(hub *Hub) {
	rline := readline.NewInstance()
	for {
		input := ""
		rline.SetPrompt(text.PROMPT)
		for {
			line, e := rline.Readline()
			if isInterrupt(e) {
				input = ""
				break
			}
			if e != nil {
				hub.quit()
				return
			}
			input = input + line + "\n"
			if !lexer.Unfinished(input) {
				break
			}
			rline.SetPrompt(text.INDENT_PROMPT)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if hub.Do(input) {
			break
		}
	}
}

// Ctrl-C abandons the input so far but not the session. The readline library reports it as an
// error whose text is its ErrCtrlC constant.
func isInterrupt(e error) bool {
	return e != nil && e.Error() == readline.ErrCtrlC
}
