package log

import (
	"fmt"
	"io"
	"strings"
)

// Logger filters and prints messages to a destination
type Logger struct {
	output io.Writer
	info   bool
	warn   bool
	err    bool
	debug  bool
}

// New returns an instance of Logger with every level disabled
func New(output io.Writer) *Logger {
	return &Logger{output: output}
}

// SetInfo activates/deactivates info level
func (l *Logger) SetInfo(value bool) {
	l.info = value
}

// SetWarn activates/deactivates warn level
func (l *Logger) SetWarn(value bool) {
	l.warn = value
}

// SetError activates/deactivates error level
func (l *Logger) SetError(value bool) {
	l.err = value
}

// SetDebug activates/deactivates debug level
func (l *Logger) SetDebug(value bool) {
	l.debug = value
}

// Logf writes a formatted message terminated by a newline
func (l *Logger) Logf(format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(l.output, format, a...)
}

// Log writes its operands separated by spaces
func (l *Logger) Log(a ...interface{}) {
	fmt.Fprintln(l.output, a...)
}

func (l *Logger) logWithColor(color string, a ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	l.Log(color + msg + ConsoleColors.Reset())
}

func (l *Logger) logfWithColor(color string, format string, a ...interface{}) {
	l.Logf(color+strings.TrimSuffix(format, "\n")+ConsoleColors.Reset(), a...)
}

// Info writes the message if info level is active
func (l *Logger) Info(a ...interface{}) {
	if l.info {
		l.logWithColor(ConsoleColors.Blue(), a...)
	}
}

// Infof writes the formatted message if info level is active
func (l *Logger) Infof(format string, a ...interface{}) {
	if l.info {
		l.logfWithColor(ConsoleColors.Blue(), format, a...)
	}
}

// Warn writes the message if warn level is active
func (l *Logger) Warn(a ...interface{}) {
	if l.warn {
		l.logWithColor(ConsoleColors.Yellow(), a...)
	}
}

// Warnf writes the formatted message if warn level is active
func (l *Logger) Warnf(format string, a ...interface{}) {
	if l.warn {
		l.logfWithColor(ConsoleColors.Yellow(), format, a...)
	}
}

// Error writes the error if error level is active
func (l *Logger) Error(err error) {
	if l.err {
		l.logWithColor(ConsoleColors.Red(), err.Error())
	}
}

// Errorf writes the formatted message if error level is active
func (l *Logger) Errorf(format string, a ...interface{}) {
	if l.err {
		l.logfWithColor(ConsoleColors.Red(), format, a...)
	}
}

// Debug writes the message if debug level is active
func (l *Logger) Debug(a ...interface{}) {
	if l.debug {
		l.logWithColor(ConsoleColors.Cyan(), a...)
	}
}

// Debugf writes the formatted message if debug level is active
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.debug {
		l.logfWithColor(ConsoleColors.Cyan(), format, a...)
	}
}
