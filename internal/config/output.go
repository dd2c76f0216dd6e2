package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// AllPieces reports every piece of the queried colour instead of one tile
	AllPieces bool

	// ShowBoard draws the position above a text report
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
