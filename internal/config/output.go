package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Notation used for the legal move list
	Notation Notation

	// JSONFormat writes reports as JSON instead of text
	JSONFormat bool

	// ShowBoard adds an eight-line diagram to text reports
	ShowBoard bool

	// ShowMoves lists the legal moves in reports
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:  SAN,
		ShowMoves: true,
	}
}
