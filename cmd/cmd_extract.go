package cmd

import (
	"fmt"
	"strings"

	"github.com/nanovms/unistrap/image"
	"github.com/nanovms/unistrap/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ExtractCommand copies a payload out of an image
func ExtractCommand(fs afero.Fs) *cobra.Command {
	var cmdExtract = &cobra.Command{
		Use:   "extract [image]",
		Short: "Copy the bootstrap or kernel payload out of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractCommandHandler(cmd, fs, args[0])
		},
	}

	cmdExtract.Flags().StringP("payload", "p", string(image.Kernel), "payload to extract (bootstrap or kernel)")
	cmdExtract.Flags().StringP("output", "o", "", "destination path (default \"<payload>.bin\")")

	return cmdExtract
}

func extractCommandHandler(cmd *cobra.Command, fs afero.Fs, path string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("payload")
	p, err := image.ParsePayload(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	dest, _ := cmd.Flags().GetString("output")
	if dest = strings.TrimSpace(dest); dest == "" {
		dest = string(p) + ".bin"
	}

	r, err := image.NewReader(fs, path)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Header().Validate(); err != nil {
		return err
	}

	log.Infof("extracting %s payload of %s", p, path)
	n, err := r.CopyPayload(p, fs, dest)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[*] Extracted %d bytes of %s to %s\n", n, p, dest)
	return nil
}
