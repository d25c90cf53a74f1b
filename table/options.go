package table

// ============================================================================
// PARSE OPTIONS — functional options for ParseCSV / ParseJSON
// ============================================================================

// Option configures parsing via the functional options pattern.
type Option func(*parseConfig)

type parseConfig struct {
	headerRow bool // lift the first input row into column headers
}

// WithHeaderRow treats the first input row as column header labels instead
// of data. The labels are taken verbatim (no numeric coercion).
func WithHeaderRow() Option {
	return func(c *parseConfig) {
		c.headerRow = true
	}
}

// applyOptions creates a parseConfig from functional options.
func applyOptions(opts []Option) *parseConfig {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
