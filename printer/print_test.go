package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nanovms/unistrap/image"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	h, _ := image.NewHeader(440, 1000)
	var b bytes.Buffer

	Report(&b, "kernel.img", &image.Report{Header: h, Written: h.RawSize(), Padding: h.PadSize()})

	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, "[*] Wrote 1476 bytes, padded to 60 bytes", lines[0])
	assert.Contains(t, lines[1], "kernel.img (1.5 kB, 3 sectors)")
}

func TestHeaderTable(t *testing.T) {
	h, _ := image.NewHeader(440, 1000)
	var b bytes.Buffer

	HeaderTable(&b, h)

	out := b.String()
	assert.Contains(t, out, "kernel_offset")
	assert.Contains(t, out, "952")
	assert.Contains(t, out, "1.0 kB")
}

func TestJSON(t *testing.T) {
	h, _ := image.NewHeader(440, 1000)
	var b bytes.Buffer

	assert.Nil(t, JSON(&b, h))
	assert.Contains(t, b.String(), `"kernel_offset": 952`)
}

func TestFailure(t *testing.T) {
	var b bytes.Buffer

	Failure(&b, errors.New("expected kernel path"))

	assert.Contains(t, b.String(), "expected kernel path")
}
