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

// WithNotation sets the move notation.
func (b *ConfigBuilder) WithNotation(n Notation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard enables board diagrams in text reports.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithWorkers sets the number of analysis goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithPerft sets the perft depth and the divide and verify switches.
func (b *ConfigBuilder) WithPerft(depth int, divide, verify bool) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	b.cfg.Analysis.Divide = divide
	b.cfg.Analysis.Verify = verify
	return b
}

// WithPuzzle configures a puzzle and the attempt to check against it.
func (b *ConfigBuilder) WithPuzzle(fen string, solution, attempt []string) *ConfigBuilder {
	b.cfg.Puzzle.FEN = fen
	b.cfg.Puzzle.Solution = solution
	b.cfg.Puzzle.Attempt = attempt
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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
