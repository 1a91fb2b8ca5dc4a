package cmd

import (
	"io"

	"github.com/nanovms/unistrap/image"
	"github.com/nanovms/unistrap/log"
	"github.com/nanovms/unistrap/printer"
	"github.com/nanovms/unistrap/types"
	"github.com/nanovms/unistrap/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func composeCommandHandler(cmd *cobra.Command, fs afero.Fs) error {
	c, err := loadConfig(cmd, NewComposeCommandFlags(cmd.Flags()))
	if err != nil {
		return err
	}
	if err = validateRequired(c); err != nil {
		return err
	}

	report, err := composeImage(fs, c, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if c.RunConfig.JSON {
		return printer.JSON(cmd.OutOrStdout(), report)
	}
	printer.Report(cmd.OutOrStdout(), c.Output, report)
	return nil
}

func validateRequired(c *types.Config) error {
	if c.Bootstrap == "" {
		return ErrMissingBootstrapPath
	}
	if c.Kernel == "" {
		return ErrMissingKernelPath
	}
	return nil
}

// composeImage writes the image described by c; progress is drawn on
// status when requested and status is a terminal
func composeImage(fs afero.Fs, c *types.Config, status io.Writer) (*image.Report, error) {
	composer := &image.Composer{}

	if c.RunConfig.Progress {
		if util.IsTerminal(status) {
			bar := util.NewProgressBar(status, expectedImageSize(fs, c), "composing "+c.Output)
			defer bar.Finish()
			composer.Progress = bar
		} else {
			log.Warn("progress bar disabled: not a terminal")
		}
	}

	log.Infof("composing %s from %s and %s", c.Output, c.Bootstrap, c.Kernel)
	return composer.ComposeFiles(fs, image.Files{
		Bootstrap: c.Bootstrap,
		Kernel:    c.Kernel,
		Output:    c.Output,
		Atomic:    c.RunConfig.Atomic,
	})
}

// expectedImageSize sizes the progress bar; -1 when the inputs cannot be
// measured up front
func expectedImageSize(fs afero.Fs, c *types.Config) int64 {
	bs, err := fs.Stat(c.Bootstrap)
	if err != nil {
		return -1
	}
	k, err := fs.Stat(c.Kernel)
	if err != nil {
		return -1
	}
	h, err := image.NewHeader(uint64(bs.Size()), uint64(k.Size()))
	if err != nil {
		return -1
	}
	return int64(h.ImageSize())
}
