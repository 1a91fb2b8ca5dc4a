package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nanovms/unistrap/constants"
	"github.com/nanovms/unistrap/image"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/boot.bin", bytes.Repeat([]byte{0x11}, 440), 0644))
	require.NoError(t, afero.WriteFile(fs, "/src/kernel.elf", bytes.Repeat([]byte{0x22}, 1000), 0644))
	return fs
}

func run(fs afero.Fs, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(newRootCommand(fs), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecuteExitStatus(t *testing.T) {
	fs := newTestFs(t)

	t.Run("too few arguments", func(t *testing.T) {
		code, stdout, _ := run(fs)

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "fatal: too few arguments")
		assert.Contains(t, stdout, "mbr kernel imager")
	})

	t.Run("help", func(t *testing.T) {
		code, stdout, _ := run(fs, "-h")

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "--bootstrap")
	})

	t.Run("version", func(t *testing.T) {
		code, stdout, _ := run(fs, "-v")

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "Unistrap v"+constants.Version)
	})

	t.Run("missing bootstrap", func(t *testing.T) {
		code, stdout, _ := run(fs, "-k", "/src/kernel.elf")

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "fatal: expected bootstrap path")
	})

	t.Run("missing kernel", func(t *testing.T) {
		code, stdout, _ := run(fs, "-b", "/src/boot.bin")

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "fatal: expected kernel path")
	})

	t.Run("bootstrap not found", func(t *testing.T) {
		code, _, stderr := run(fs, "-b", "/src/missing.bin", "-k", "/src/kernel.elf", "-o", "/out/missing.img")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "source unavailable: bootstrap (/src/missing.bin)")
		_, err := fs.Stat("/out/missing.img")
		assert.Error(t, err)
	})
}

func TestExecuteCompose(t *testing.T) {
	fs := newTestFs(t)

	code, stdout, stderr := run(fs, "-b", "/src/boot.bin", "-k", "/src/kernel.elf", "-o", "/out/kernel.img")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "[*] Wrote 1476 bytes, padded to 60 bytes")

	data, err := afero.ReadFile(fs, "/out/kernel.img")
	require.NoError(t, err)
	assert.Len(t, data, 1536)
}

func TestExecuteComposeDefaultOutput(t *testing.T) {
	fs := newTestFs(t)

	code, _, stderr := run(fs, "-b", "/src/boot.bin", "-k", "/src/kernel.elf", "--atomic=false")

	require.Equal(t, 0, code, stderr)
	exists, err := afero.Exists(fs, "kernel.img")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecuteComposeJSON(t *testing.T) {
	fs := newTestFs(t)

	code, stdout, stderr := run(fs, "--json", "-b", "/src/boot.bin", "-k", "/src/kernel.elf", "-o", "/out/kernel.img")
	require.Equal(t, 0, code, stderr)

	var report image.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, uint64(60), report.Padding)
	assert.Equal(t, uint64(952), report.Header.KernelOffset)
}

func TestImageSubcommands(t *testing.T) {
	fs := newTestFs(t)
	code, _, stderr := run(fs, "-b", "/src/boot.bin", "-k", "/src/kernel.elf", "-o", "/out/kernel.img")
	require.Equal(t, 0, code, stderr)

	t.Run("inspect", func(t *testing.T) {
		code, stdout, stderr := run(fs, "inspect", "/out/kernel.img")

		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "kernel_offset")
		assert.Contains(t, stdout, "bootstrap at file offset 36, kernel at file offset 476")
	})

	t.Run("inspect json", func(t *testing.T) {
		code, stdout, stderr := run(fs, "inspect", "--json", "/out/kernel.img")
		require.Equal(t, 0, code, stderr)

		var got inspection
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, uint16(3), got.Header.SectorCount)
		assert.Equal(t, uint64(60), got.PadSize)
		assert.Equal(t, uint64(476), got.FileOffset["kernel"])
	})

	t.Run("verify", func(t *testing.T) {
		code, stdout, stderr := run(fs, "verify", "/out/kernel.img")

		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "/out/kernel.img (1.5 kB, 3 sectors, 60 pad bytes)")
	})

	t.Run("extract", func(t *testing.T) {
		code, stdout, stderr := run(fs, "extract", "/out/kernel.img", "-p", "bootstrap", "-o", "/out/boot.bin")

		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "Extracted 440 bytes of bootstrap")
		data, err := afero.ReadFile(fs, "/out/boot.bin")
		require.NoError(t, err)
		assert.Equal(t, bytes.Repeat([]byte{0x11}, 440), data)
	})

	t.Run("extract unknown payload", func(t *testing.T) {
		code, _, stderr := run(fs, "extract", "/out/kernel.img", "-p", "initrd")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "unknown payload")
	})

	t.Run("verify damaged image", func(t *testing.T) {
		data, err := afero.ReadFile(fs, "/out/kernel.img")
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, "/out/damaged.img", data[:1024], 0644))

		code, _, stderr := run(fs, "verify", "/out/damaged.img")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "image is 1024 bytes")
	})
}
