package cmd

import (
	"fmt"

	"github.com/nanovms/unistrap/constants"
	"github.com/spf13/cobra"
)

// VersionCommand provides version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Args:  cobra.NoArgs,
		Run:   printVersion,
	}
	return cmdVersion
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Fprint(cmd.OutOrStdout(), versionBanner())
}

func versionBanner() string {
	return fmt.Sprintf(
		"-------------------------------\n"+
			"%s\n"+
			"Unistrap v%s\n"+
			"-------------------------------\n",
		constants.Copyright, constants.Version)
}
