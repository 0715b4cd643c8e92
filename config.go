package rex

// Config carries ambient engine-selection knobs that govern compilation
// behavior but are not part of the pattern language itself (spec §6.3).
type Config struct {
	// MaxProgramLength caps the number of elements a compiled linear
	// Program may contain. Default: 10,000.
	MaxProgramLength int

	// MaxNFAStates caps the number of states a compiled NFA Graph may
	// contain. Counted-quantifier cloning can otherwise blow up state
	// count on a pattern like "(a{1,1000}){1,1000}". Default: 100,000.
	MaxNFAStates int

	// EnableAhoCorasickPrefilter toggles the literal-alternation
	// fast-reject prefilter (§4.7). Default: true.
	EnableAhoCorasickPrefilter bool
}

// DefaultConfig returns conservative, generous defaults.
func DefaultConfig() Config {
	return Config{
		MaxProgramLength:           10_000,
		MaxNFAStates:               100_000,
		EnableAhoCorasickPrefilter: true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxProgramLength: 1 to 1,000,000
//   - MaxNFAStates: 1 to 1,000,000
func (c Config) Validate() error {
	if c.MaxProgramLength < 1 || c.MaxProgramLength > 1_000_000 {
		return &ConfigError{Field: "MaxProgramLength", Message: "must be between 1 and 1,000,000"}
	}
	if c.MaxNFAStates < 1 || c.MaxNFAStates > 1_000_000 {
		return &ConfigError{Field: "MaxNFAStates", Message: "must be between 1 and 1,000,000"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}
