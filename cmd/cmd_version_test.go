package cmd_test

import (
	"bytes"
	"testing"

	"github.com/nanovms/unistrap/cmd"
	"github.com/nanovms/unistrap/constants"
	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	var b bytes.Buffer
	versionCmd := cmd.VersionCommand()
	versionCmd.SetOut(&b)
	versionCmd.SetArgs([]string{})

	err := versionCmd.Execute()

	assert.Nil(t, err)
	assert.Contains(t, b.String(), "Unistrap v"+constants.Version)
}
