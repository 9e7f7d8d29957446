package logger

import (
	"fmt"
	"io"
	"os"
)

type stdOut struct {
	print func(msg string)
}

var _ Logger = &stdOut{}

func NewStdOut() Logger {
	return NewWriter(os.Stdout)
}

// NewWriter logs one "[LEVEL] message" line per call to w.
func NewWriter(w io.Writer) Logger {
	return &stdOut{
		print: func(msg string) {
			_, _ = fmt.Fprintln(w, msg)
		},
	}
}

func (p *stdOut) Debugf(format string, args ...any) {
	p.print(fmt.Sprintf("[DEBUG] "+format, args...))
}

func (p *stdOut) Infof(format string, args ...any) {
	p.print(fmt.Sprintf("[INFO] "+format, args...))
}

func (p *stdOut) Warnf(format string, args ...any) {
	p.print(fmt.Sprintf("[WARN] "+format, args...))
}

func (p *stdOut) Errorf(format string, args ...any) {
	p.print(fmt.Sprintf("[ERROR] "+format, args...))
}
