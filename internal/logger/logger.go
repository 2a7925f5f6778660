package logger

// Logger is the leveled logging interface shared by the console and file
// loggers.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Tee fans each message out to every non-nil target.
type Tee []Logger

// NewTee builds a Tee from the given loggers, dropping nils.
func NewTee(loggers ...Logger) Tee {
	var out Tee
	for _, l := range loggers {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

// Tracef forwards to every target.
func (t Tee) Tracef(format string, args ...any) {
	for _, l := range t {
		l.Tracef(format, args...)
	}
}

// Debugf forwards to every target.
func (t Tee) Debugf(format string, args ...any) {
	for _, l := range t {
		l.Debugf(format, args...)
	}
}

// Infof forwards to every target.
func (t Tee) Infof(format string, args ...any) {
	for _, l := range t {
		l.Infof(format, args...)
	}
}

// Warnf forwards to every target.
func (t Tee) Warnf(format string, args ...any) {
	for _, l := range t {
		l.Warnf(format, args...)
	}
}

// Errorf forwards to every target.
func (t Tee) Errorf(format string, args ...any) {
	for _, l := range t {
		l.Errorf(format, args...)
	}
}
