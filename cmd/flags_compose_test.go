package cmd_test

import (
	"testing"

	"github.com/nanovms/unistrap/cmd"
	"github.com/nanovms/unistrap/types"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func newComposeFlagSet() (flagSet *pflag.FlagSet) {
	flagSet = pflag.NewFlagSet("test", 0)

	cmd.PersistComposeCommandFlags(flagSet)
	return
}

func TestCreateComposeFlags(t *testing.T) {
	flagSet := newComposeFlagSet()

	flagSet.Set("output", "disk.img")
	flagSet.Set("bootstrap", "boot.bin")
	flagSet.Set("kernel", "kernel.elf")
	flagSet.Set("progress", "true")

	composeFlags := cmd.NewComposeCommandFlags(flagSet)

	assert.Equal(t, "disk.img", composeFlags.Output)
	assert.Equal(t, "boot.bin", composeFlags.Bootstrap)
	assert.Equal(t, "kernel.elf", composeFlags.Kernel)
	assert.True(t, composeFlags.Progress)
	assert.True(t, composeFlags.Atomic)
	assert.False(t, composeFlags.AtomicSet)
}

func TestComposeFlagsMergeToConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := &types.Config{}

		err := cmd.NewComposeCommandFlags(newComposeFlagSet()).MergeToConfig(c)

		assert.Nil(t, err)
		assert.Equal(t, &types.Config{Output: types.DefaultOutput}, c)
	})

	t.Run("flags override config file values", func(t *testing.T) {
		flagSet := newComposeFlagSet()
		flagSet.Set("kernel", "other.elf")
		flagSet.Set("atomic", "false")

		c := types.NewConfig()
		c.Bootstrap = "boot.bin"
		c.Kernel = "kernel.elf"

		err := cmd.NewComposeCommandFlags(flagSet).MergeToConfig(c)

		assert.Nil(t, err)
		assert.Equal(t, &types.Config{
			Output:    types.DefaultOutput,
			Bootstrap: "boot.bin",
			Kernel:    "other.elf",
		}, c)
	})
}
