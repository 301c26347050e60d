package regcore

import "github.com/regviz/regcore/nfa"

// Config controls pattern compilation. It is intentionally small: the
// pipeline's only configurable stage is NFA construction, whether to
// record bounding-box metadata and how deeply to recurse into nested
// constructs (spec Non-goals: no faster-than-DFA matching strategy to
// select between).
type Config struct {
	// NFA controls Thompson construction, notably whether bounding
	// boxes are recorded (set false for headless acceptance checking
	// that never inspects box metadata).
	NFA nfa.Config
}

// DefaultConfig returns the default Config: bounding boxes on, a
// generous recursion depth.
func DefaultConfig() Config {
	return Config{NFA: nfa.DefaultConfig()}
}
