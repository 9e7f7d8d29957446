package logger

// Noop discards everything. It's the client default.
type Noop struct{}

var _ Logger = Noop{}

func (Noop) Debugf(string, ...any) {}
func (Noop) Infof(string, ...any)  {}
func (Noop) Warnf(string, ...any)  {}
func (Noop) Errorf(string, ...any) {}
