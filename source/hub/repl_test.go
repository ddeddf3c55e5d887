package hub

import (
	"errors"
	"testing"

	"github.com/lmorg/readline"
)

func TestIsInterrupt(t *testing.T) {
	tests := []struct {
		e    error
		want bool
	}{
		{nil, false},
		{errors.New(readline.ErrCtrlC), true},
		{errors.New("EOF"), false},
	}
	for i, tt := range tests {
		if got := isInterrupt(tt.e); got != tt.want {
			t.Fatalf("tests[%d] - isInterrupt wrong. expected=%v, got=%v", i, tt.want, got)
		}
	}
}
