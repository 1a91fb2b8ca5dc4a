package cmd

import (
	"fmt"
	"io"

	"github.com/nanovms/unistrap/constants"
	"github.com/nanovms/unistrap/log"
	"github.com/nanovms/unistrap/printer"
	"github.com/nanovms/unistrap/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// GetRootCommand provides the unistrap command tree. The root command itself
// composes an image.
func GetRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "unistrap",
		Short:         "mbr kernel imager",
		Long:          "unistrap - mbr kernel imager\n\nWrites a header, a bootstrap payload and a kernel payload into a sector aligned image.",
		Version:       constants.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log.InitDefault(cmd.ErrOrStderr(), c)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return composeCommandHandler(cmd, fs)
		},
	}
	rootCmd.SetVersionTemplate(versionBanner())

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())
	PersistConfigCommandFlags(rootCmd.PersistentFlags())
	PersistComposeCommandFlags(rootCmd.Flags())

	rootCmd.AddCommand(InspectCommand(fs))
	rootCmd.AddCommand(VerifyCommand(fs))
	rootCmd.AddCommand(ExtractCommand(fs))
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}

// loadConfig builds the configuration from the config file and the global
// flags, then applies any extra flag groups in order
func loadConfig(cmd *cobra.Command, extra ...MergeConfigFlags) (*types.Config, error) {
	flags := cmd.Flags()
	c := types.NewConfig()

	merge := append([]MergeConfigFlags{NewConfigCommandFlags(flags), NewGlobalCommandFlags(flags)}, extra...)
	if err := NewMergeConfigContainer(merge...).Merge(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Execute runs unistrap with args and returns the process exit status.
//
// Showing help or the version banner exits with a failure status, as does
// any configuration error.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := GetRootCommand()
	return execute(rootCmd, args, stdout, stderr)
}

func execute(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if len(args) == 0 {
		fmt.Fprintf(stdout, "fatal: %v\n", ErrTooFewArguments)
		rootCmd.Help()
		return 1
	}

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if isConfigError(err) {
			fmt.Fprintf(stdout, "fatal: %v\n", err)
			cmd.Help()
			return 1
		}
		printer.Failure(stderr, err)
		if stack := errorStack(err); stack != "" {
			log.Debug(stack)
		}
		return 1
	}

	if cmd.Name() == "help" {
		return 1
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return 1
	}
	if version, _ := cmd.Flags().GetBool("version"); version {
		return 1
	}
	return 0
}
