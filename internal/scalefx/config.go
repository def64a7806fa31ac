package scalefx

// Config holds the tunables that pass 1 and pass 3 read. The zero Config is
// not valid; use DefaultConfig.
type Config struct {
	// Threshold gates corner-strength activation in pass 1. Range
	// [0.01, 1.0]; default 0.5.
	Threshold float32

	// FilterAAEnabled controls which branch of cornerStrength is taken
	// (see DESIGN.md, Open Question c). Default true.
	FilterAAEnabled bool

	// FilterCorners relaxes the pass-3 level-1 corner test so it fires
	// even when the neighbouring corner isn't independently resolved.
	// Default true.
	FilterCorners bool
}

// DefaultConfig returns the default tunables: Threshold 0.5,
// FilterAAEnabled true, FilterCorners true.
func DefaultConfig() Config {
	return Config{
		Threshold:       0.5,
		FilterAAEnabled: true,
		FilterCorners:   true,
	}
}
