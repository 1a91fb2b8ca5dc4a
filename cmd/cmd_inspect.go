package cmd

import (
	"fmt"

	"github.com/nanovms/unistrap/image"
	"github.com/nanovms/unistrap/printer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// inspection is the json form of the inspect output
type inspection struct {
	Header     image.Header      `json:"header"`
	Size       int64             `json:"size"`
	PadSize    uint64            `json:"pad_size"`
	FileOffset map[string]uint64 `json:"file_offset"`
}

// InspectCommand prints the header of an image
func InspectCommand(fs afero.Fs) *cobra.Command {
	var cmdInspect = &cobra.Command{
		Use:   "inspect [image]",
		Short: "Print the header of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectCommandHandler(cmd, fs, args[0])
		},
	}
	return cmdInspect
}

func inspectCommandHandler(cmd *cobra.Command, fs afero.Fs, path string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r, err := image.NewReader(fs, path)
	if err != nil {
		return err
	}
	defer r.Close()

	h := r.Header()
	out := cmd.OutOrStdout()

	if c.RunConfig.JSON {
		return printer.JSON(out, inspection{
			Header:  h,
			Size:    r.Size(),
			PadSize: uint64(r.Size()) - h.RawSize(),
			FileOffset: map[string]uint64{
				string(image.Bootstrap): h.FileOffset(image.Bootstrap),
				string(image.Kernel):    h.FileOffset(image.Kernel),
			},
		})
	}

	printer.HeaderTable(out, h)
	fmt.Fprintf(out, "bootstrap at file offset %d, kernel at file offset %d\n",
		h.FileOffset(image.Bootstrap), h.FileOffset(image.Kernel))
	return nil
}
