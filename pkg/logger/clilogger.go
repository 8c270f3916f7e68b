package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/tj/go-spin"
)

// CLILogger prints human oriented progress for the client commands.
type CLILogger struct {
	w             io.Writer
	spinnerStopCh chan bool
	spinnerDoneCh chan struct{}
	spinnerMsg    string
	spinnerArgs   []interface{}
	isSilent      bool
}

func NewCLILogger(w io.Writer) *CLILogger {
	return &CLILogger{w: w}
}

func (l *CLILogger) Silence() {
	if l == nil {
		return
	}
	l.isSilent = true
}

func (l *CLILogger) isTerminal() bool {
	f, ok := l.w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (l *CLILogger) Info(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintf(l.w, "    ")
	fmt.Fprintln(l.w, fmt.Sprintf(msg, args...))
	fmt.Fprintln(l.w, "")
}

func (l *CLILogger) ActionWithSpinner(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintf(l.w, "  • ")
	fmt.Fprintf(l.w, msg, args...)

	l.spinnerMsg = msg
	l.spinnerArgs = args

	if !l.isTerminal() {
		return
	}

	s := spin.New()
	fmt.Fprintf(l.w, " %s", s.Next())

	l.spinnerStopCh = make(chan bool)
	l.spinnerDoneCh = make(chan struct{})

	go func() {
		defer close(l.spinnerDoneCh)
		for {
			select {
			case <-l.spinnerStopCh:
				return
			case <-time.After(time.Millisecond * 100):
				fmt.Fprintf(l.w, "\r")
				fmt.Fprintf(l.w, "  • ")
				fmt.Fprintf(l.w, msg, args...)
				fmt.Fprintf(l.w, " %s", s.Next())
			}
		}
	}()
}

func (l *CLILogger) stopSpinner() {
	if l.spinnerStopCh == nil {
		return
	}
	l.spinnerStopCh <- true
	close(l.spinnerStopCh)
	<-l.spinnerDoneCh
	l.spinnerStopCh = nil
}

func (l *CLILogger) FinishSpinner() {
	if l == nil || l.isSilent {
		return
	}
	l.stopSpinner()

	green := color.New(color.FgHiGreen)

	fmt.Fprintf(l.w, "\r")
	fmt.Fprintf(l.w, "  • ")
	fmt.Fprintf(l.w, l.spinnerMsg, l.spinnerArgs...)
	green.Fprintf(l.w, " ✓")
	fmt.Fprintf(l.w, "  \n")
}

func (l *CLILogger) FinishSpinnerWithError() {
	if l == nil || l.isSilent {
		return
	}
	l.stopSpinner()

	red := color.New(color.FgHiRed)

	fmt.Fprintf(l.w, "\r")
	fmt.Fprintf(l.w, "  • ")
	fmt.Fprintf(l.w, l.spinnerMsg, l.spinnerArgs...)
	red.Fprintf(l.w, " ✗")
	fmt.Fprintf(l.w, "  \n")
}

func (l *CLILogger) Error(err error) {
	if l == nil || l.isSilent {
		return
	}

	c := color.New(color.FgHiRed)
	c.Fprintf(l.w, "  • ")
	c.Fprintln(l.w, err.Error())
}
