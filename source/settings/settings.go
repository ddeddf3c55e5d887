// All this does is contain in one place the constants controlling which bits of the inner workings of the
// lexer/reader/evaluator are displayed for debugging purposes, together with the logger they report to.
// In a release the SHOW_ flags must all be set to false.

package settings

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// These do what it sounds like.
	SHOW_LEXER  = false
	SHOW_READER = false
	SHOW_EVAL   = false // Logs every turn of the evaluator's trampoline. Very noisy.

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.

	MAX_EVAL_DEPTH = 10000 // Non-tail nesting of the evaluator beyond this is an error.

	LOAD_PRELUDE = true // If false, the in-language definitions of 'not' and 'cond' are left out of the base environment.

	LOG_ENV_VAR       = "ENSEMBLE_LOG"
	DEFAULT_LOG_LEVEL = logrus.WarnLevel
)

// The one logger. It writes to stderr so as not to get mixed up with what the REPL prints.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(DEFAULT_LOG_LEVEL)
	if level, ok := os.LookupEnv(LOG_ENV_VAR); ok {
		SetLogLevel(log, level)
	}
	if SHOW_LEXER || SHOW_READER || SHOW_EVAL {
		log.SetLevel(logrus.TraceLevel)
	}
	return log
}

// SetLogLevel parses a level name such as "debug" or "warn". Unknown names leave the level alone
// and are reported.
func SetLogLevel(log *logrus.Logger, name string) bool {
	level, e := logrus.ParseLevel(strings.TrimSpace(name))
	if e != nil {
		log.WithField("level", name).Warn("unknown log level")
		return false
	}
	log.SetLevel(level)
	return true
}
