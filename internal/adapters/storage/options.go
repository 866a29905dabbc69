package storage

// Option applies a configuration option to the Gateway.
type Option func(*Gateway)

// WithMatchLogFilename overrides the match log document name.
func WithMatchLogFilename(name string) Option {
	return func(g *Gateway) {
		if name != "" {
			g.matchesFile = name
		}
	}
}

// WithStatsFilename overrides the statistics document name.
func WithStatsFilename(name string) Option {
	return func(g *Gateway) {
		if name != "" {
			g.statsFile = name
		}
	}
}

// WithCompactOutput disables indentation of the persisted documents.
// Indented output is the default; the documents are meant to be
// human-inspectable.
func WithCompactOutput() Option {
	return func(g *Gateway) {
		g.compact = true
	}
}
