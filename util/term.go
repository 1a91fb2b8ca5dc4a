package util

import (
	"fmt"
	"io"
	"time"

	"github.com/moby/term"
	"github.com/schollz/progressbar/v3"
)

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	_, ok := term.GetFdInfo(w)
	return ok
}

// NewProgressBar returns a byte counting progress bar drawn on w. A negative
// total draws an indeterminate bar.
func NewProgressBar(w io.Writer, total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)
}
