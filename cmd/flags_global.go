package cmd

import (
	"github.com/nanovms/unistrap/types"

	"github.com/spf13/pflag"
)

// GlobalCommandFlags are flags accepted by every command
type GlobalCommandFlags struct {
	ShowWarnings bool
	ShowErrors   bool
	ShowDebug    bool
	Verbose      bool
	JSON         bool
}

// MergeToConfig enables the output options requested on the command line.
// Options already enabled by a config file stay enabled.
func (flags *GlobalCommandFlags) MergeToConfig(config *types.Config) (err error) {
	rc := &config.RunConfig
	rc.ShowWarnings = rc.ShowWarnings || flags.ShowWarnings
	rc.ShowErrors = rc.ShowErrors || flags.ShowErrors
	rc.ShowDebug = rc.ShowDebug || flags.ShowDebug
	rc.Verbose = rc.Verbose || flags.Verbose
	rc.JSON = rc.JSON || flags.JSON

	return
}

// NewGlobalCommandFlags returns an instance of GlobalCommandFlags
func NewGlobalCommandFlags(cmdFlags *pflag.FlagSet) (flags *GlobalCommandFlags) {
	flags = &GlobalCommandFlags{}

	flags.ShowWarnings, _ = cmdFlags.GetBool("show-warnings")
	flags.ShowErrors, _ = cmdFlags.GetBool("show-errors")
	flags.ShowDebug, _ = cmdFlags.GetBool("show-debug")
	flags.Verbose, _ = cmdFlags.GetBool("verbose")
	flags.JSON, _ = cmdFlags.GetBool("json")

	return flags
}

// PersistGlobalCommandFlags append the global flags to a command
func PersistGlobalCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.Bool("show-warnings", false, "display warning messages")
	cmdFlags.Bool("show-errors", false, "display error messages")
	cmdFlags.Bool("show-debug", false, "display debug messages")
	cmdFlags.Bool("verbose", false, "display info messages")
	cmdFlags.BoolP("json", "j", false, "display json messages")
}
