//
// Ensemble
//
// A small Lisp in the Clojure family: a reader, a trampolined evaluator with macros and
// exceptions, a core library, and a REPL.
//

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ensemble-lang/ensemble/source/hub"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/text"
)

func main() {
	expr := flag.String("e", "", "evaluate an expression, print the result and exit")
	version := flag.Bool("v", false, "print the version and exit")
	logLevel := flag.String("log", "", "set the log level (trace, debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, text.HELP)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *logLevel != "" {
		settings.SetLogLevel(settings.Log, *logLevel)
	}
	if *version {
		fmt.Println("Ensemble version " + text.VERSION)
		return
	}

	hb := hub.New(os.Stdout)
	if *expr != "" {
		hb.Do(*expr)
		if hb.LastError() != nil {
			os.Exit(1)
		}
		return
	}

	fmt.Print(text.Logo())
	hub.StartHub(hb)
}
