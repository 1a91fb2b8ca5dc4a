package cmd

import (
	"github.com/nanovms/unistrap/image"
	"github.com/nanovms/unistrap/printer"
	"github.com/nanovms/unistrap/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// VerifyCommand checks an existing image
func VerifyCommand(fs afero.Fs) *cobra.Command {
	var cmdVerify = &cobra.Command{
		Use:   "verify [image]",
		Short: "Check the header, length and padding of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return verifyCommandHandler(cmd, fs, args[0])
		},
	}
	return cmdVerify
}

func verifyCommandHandler(cmd *cobra.Command, fs afero.Fs, path string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r, err := image.NewReader(fs, path)
	if err != nil {
		return err
	}
	defer r.Close()

	var v *image.Verification
	verify := func() (err error) {
		v, err = r.Verify()
		return
	}

	out := cmd.OutOrStdout()
	if util.IsTerminal(out) && !c.RunConfig.JSON {
		err = util.NewProgressSpinner(out).Do(verify, "verifying ", path)
	} else {
		err = verify()
	}
	if err != nil {
		return err
	}

	if c.RunConfig.JSON {
		return printer.JSON(out, v)
	}
	printer.Verification(out, path, v)
	return nil
}
