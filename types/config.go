package types

// DefaultOutput is the image path used when none is given
const DefaultOutput = "kernel.img"

// Config for an image build
type Config struct {
	// Output is the path of the image to write.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Bootstrap is the path of the first-stage loader payload.
	Bootstrap string `json:"bootstrap,omitempty" yaml:"bootstrap,omitempty"`

	// Kernel is the path of the kernel payload.
	Kernel string `json:"kernel,omitempty" yaml:"kernel,omitempty"`

	// RunConfig
	RunConfig RunConfig `json:"run,omitempty" yaml:"run,omitempty"`
}

// RunConfig controls how a command reports what it does
type RunConfig struct {
	// Atomic writes the image to a temporary file that replaces Output
	// only once the image is complete.
	Atomic bool `json:"atomic,omitempty" yaml:"atomic,omitempty"`

	// Progress shows a progress bar while payloads are copied.
	Progress bool `json:"progress,omitempty" yaml:"progress,omitempty"`

	// JSON prints command results as json.
	JSON bool `json:"json,omitempty" yaml:"json,omitempty"`

	ShowDebug    bool `json:"show_debug,omitempty" yaml:"show_debug,omitempty"`
	ShowErrors   bool `json:"show_errors,omitempty" yaml:"show_errors,omitempty"`
	ShowWarnings bool `json:"show_warnings,omitempty" yaml:"show_warnings,omitempty"`

	// Verbose enables info messages.
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// NewConfig returns a Config with defaults applied
func NewConfig() *Config {
	return &Config{
		Output: DefaultOutput,
		RunConfig: RunConfig{
			Atomic: true,
		},
	}
}
