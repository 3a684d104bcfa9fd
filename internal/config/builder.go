package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithColour sets the colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Colour = mode
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLogLevel sets the log level by name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFile sets the file log lines are appended to.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.LogFile = path
	return b
}

// WithIO sets the input and output streams.
func (b *ConfigBuilder) WithIO(in io.Reader, out io.Writer) *ConfigBuilder {
	b.cfg.Input = in
	b.cfg.Output = out
	return b
}

// WithLogOutput sets the stream log lines go to.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogOutput = w
	return b
}
