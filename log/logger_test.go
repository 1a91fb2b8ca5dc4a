package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nanovms/unistrap/types"
)

const (
	newline = "\n"
)

func TestLogger(t *testing.T) {
	t.Run("Log should print to output", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Logf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := "test 1,2,3" + newline

		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})

	t.Run("Info should not print to output by default", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Infof("test %d,%d,%d", 1, 2, 3)

		if got := b.String(); got != "" {
			t.Errorf("got %q want empty", got)
		}
	})

	t.Run("Info should print if set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.SetInfo(true)
		logger.Infof("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ConsoleColors.Blue() + "test 1,2,3" + ConsoleColors.Reset() + newline

		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})

	t.Run("Warn should print operands if set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Warn("cannot remove", "x.img")
		if got := b.String(); got != "" {
			t.Errorf("got %q want empty", got)
		}

		logger.SetWarn(true)
		logger.Warn("cannot remove", "x.img")

		got := b.String()
		want := ConsoleColors.Yellow() + "cannot remove x.img" + ConsoleColors.Reset() + newline

		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})

	t.Run("Debug should print if set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Debugf("layout: %d sectors", 3)
		if got := b.String(); got != "" {
			t.Errorf("got %q want empty", got)
		}

		logger.SetDebug(true)
		logger.Debugf("layout: %d sectors", 3)

		got := b.String()
		want := ConsoleColors.Cyan() + "layout: 3 sectors" + ConsoleColors.Reset() + newline

		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})
}

func TestLoggerError(t *testing.T) {
	t.Run("Error should not print unless set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Error(errors.New("something wrong is happening"))

		if got := b.String(); got != "" {
			t.Errorf("got %q want empty", got)
		}
	})

	t.Run("Error should print error string to output", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)
		logger.SetError(true)

		logger.Error(errors.New("something wrong is happening"))

		got := b.String()
		want := ConsoleColors.Red() + "something wrong is happening" + ConsoleColors.Reset() + newline

		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})

	t.Run("Errorf should print formatted string to output", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)
		logger.SetError(true)

		logger.Errorf("something %s is happening", "fishy")

		got := b.String()
		want := ConsoleColors.Red() + "something fishy is happening" + ConsoleColors.Reset() + newline

		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})
}

func TestInitDefault(t *testing.T) {
	var b bytes.Buffer
	c := types.NewConfig()
	c.RunConfig.ShowDebug = true

	InitDefault(&b, c)
	defer InitDefault(&bytes.Buffer{}, nil)

	Debugf("wrote %d bytes", 1476)

	want := ConsoleColors.Cyan() + "wrote 1476 bytes" + ConsoleColors.Reset() + newline
	if got := b.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
