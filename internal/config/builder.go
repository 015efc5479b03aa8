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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithDefaultPromotion sets the promotion letter used before a choice is made.
func (b *ConfigBuilder) WithDefaultPromotion(code string) *ConfigBuilder {
	b.cfg.Engine.DefaultPromotion = code
	return b
}

// WithWorkers sets the number of scripts replayed in parallel.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithStopOnError stops replaying after the first failed script.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = stop
	return b
}

// WithSetup sets a custom starting position.
func (b *ConfigBuilder) WithSetup(setup *SetupConfig) *ConfigBuilder {
	b.cfg.Setup = setup
	return b
}
