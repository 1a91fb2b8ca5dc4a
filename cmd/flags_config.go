package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/nanovms/unistrap/types"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// ConfigCommandFlags handles config file path flag and build configuration from the file
type ConfigCommandFlags struct {
	Config string
}

// MergeToConfig reads a yaml (or json) configuration file
func (flags *ConfigCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.Config == "" {
		return
	}

	data, err := os.ReadFile(flags.Config)
	if err != nil {
		return fmt.Errorf("error reading config: %v", err)
	}

	if err = yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("error config: %v", err)
	}

	return
}

// NewConfigCommandFlags returns an instance of ConfigCommandFlags
func NewConfigCommandFlags(cmdFlags *pflag.FlagSet) (flags *ConfigCommandFlags) {
	flags = &ConfigCommandFlags{}

	flags.Config, _ = cmdFlags.GetString("config")
	flags.Config = strings.TrimSpace(flags.Config)

	return
}

// PersistConfigCommandFlags append a command the config file flag
func PersistConfigCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("config", "c", "", "unistrap config file (yaml or json)")
}
