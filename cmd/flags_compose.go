package cmd

import (
	"strings"

	"github.com/nanovms/unistrap/types"
	"github.com/spf13/pflag"
)

// ComposeCommandFlags consolidates the flags naming the image inputs and output
type ComposeCommandFlags struct {
	Output    string
	Bootstrap string
	Kernel    string
	Progress  bool

	Atomic    bool
	AtomicSet bool
}

// MergeToConfig overrides configuration passed by argument with command flags values
func (flags *ComposeCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.Output != "" {
		c.Output = flags.Output
	}

	if flags.Bootstrap != "" {
		c.Bootstrap = flags.Bootstrap
	}

	if flags.Kernel != "" {
		c.Kernel = flags.Kernel
	}

	if flags.Progress {
		c.RunConfig.Progress = true
	}

	if flags.AtomicSet {
		c.RunConfig.Atomic = flags.Atomic
	}

	if c.Output == "" {
		c.Output = types.DefaultOutput
	}

	return
}

// NewComposeCommandFlags returns an instance of ComposeCommandFlags
func NewComposeCommandFlags(cmdFlags *pflag.FlagSet) (flags *ComposeCommandFlags) {
	flags = &ComposeCommandFlags{}

	flags.Output, _ = cmdFlags.GetString("output")
	flags.Bootstrap, _ = cmdFlags.GetString("bootstrap")
	flags.Kernel, _ = cmdFlags.GetString("kernel")
	flags.Progress, _ = cmdFlags.GetBool("progress")
	flags.Atomic, _ = cmdFlags.GetBool("atomic")
	flags.AtomicSet = cmdFlags.Changed("atomic")

	flags.Output = strings.TrimSpace(flags.Output)
	flags.Bootstrap = strings.TrimSpace(flags.Bootstrap)
	flags.Kernel = strings.TrimSpace(flags.Kernel)

	return
}

// PersistComposeCommandFlags append a command the flags required to compose an image
func PersistComposeCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("output", "o", "", "image output path (default \""+types.DefaultOutput+"\")")
	cmdFlags.StringP("bootstrap", "b", "", "bootstrap image path")
	cmdFlags.StringP("kernel", "k", "", "kernel image path")
	cmdFlags.Bool("progress", false, "show a progress bar while writing the image")
	cmdFlags.Bool("atomic", true, "write through a temporary file renamed into place on success")
}
