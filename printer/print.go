package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nanovms/unistrap/image"
	"github.com/olekukonko/tablewriter"
	"github.com/ttacon/chalk"
)

// Report prints the outcome of a composition
func Report(w io.Writer, output string, r *image.Report) {
	fmt.Fprintf(w, "[*] Wrote %d bytes, padded to %d bytes\n", r.Written, r.Padding)
	fmt.Fprintf(w, "%s %s (%s, %d sectors)\n",
		chalk.Green.Color("Bootable image file:"), output,
		humanize.Bytes(r.Header.ImageSize()), r.Header.SectorCount)
	fmt.Fprintf(w, "Digest: %s\n", r.Digest)
}

// Verification prints the outcome of an image check
func Verification(w io.Writer, path string, v *image.Verification) {
	fmt.Fprintf(w, "%s %s (%s, %d sectors, %d pad bytes)\n",
		chalk.Green.Color("Image OK:"), path,
		humanize.Bytes(uint64(v.Size)), v.Header.SectorCount, v.Padding)
	fmt.Fprintf(w, "Digest: %s\n", v.Digest)
}

// Failure prints an error line
func Failure(w io.Writer, err error) {
	fmt.Fprintln(w, chalk.Red.Color(err.Error()))
}

// HeaderTable renders the fields of an image header
func HeaderTable(w io.Writer, h image.Header) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value", "Size"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})
	table.SetRowLine(true)

	table.Append([]string{"header_size", strconv.Itoa(int(h.HeaderSize)), humanize.Bytes(uint64(h.HeaderSize))})
	table.Append([]string{"sector_count", strconv.Itoa(int(h.SectorCount)), humanize.Bytes(h.ImageSize())})
	table.Append([]string{"bootstrap_offset", strconv.FormatUint(h.BootstrapOffset, 10), ""})
	table.Append([]string{"bootstrap_size", strconv.FormatUint(h.BootstrapSize, 10), humanize.Bytes(h.BootstrapSize)})
	table.Append([]string{"kernel_offset", strconv.FormatUint(h.KernelOffset, 10), ""})
	table.Append([]string{"kernel_size", strconv.FormatUint(h.KernelSize, 10), humanize.Bytes(h.KernelSize)})

	table.Render()
}

// JSON prints obj as indented json
func JSON(w io.Writer, obj interface{}) error {
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
