package vorbistag

// Option configures behavior when parsing comment blocks.
//
// Options use the functional options pattern:
//
//	comment, err := vorbistag.ParseVorbis(data,
//	    vorbistag.WithStrictParsing(),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for parsing.
type parseOptions struct {
	strictParsing     bool   // Fail on any diagnostic
	ignoreDiagnostics bool   // Suppress all diagnostics
	maxFieldSize      uint32 // Sanity bound on a record's declared length (0 = default)
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{}
}

// WithStrictParsing treats any diagnostic as a fatal error.
//
// By default, parsing continues past malformed records and collects warning
// diagnostics alongside the parsed data. With strict parsing enabled, any
// diagnostic becomes an error.
//
// Example:
//
//	comment, err := vorbistag.ParseVorbis(data, vorbistag.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *parseOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreDiagnostics suppresses all diagnostics.
//
// By default, diagnostics about dropped records and substituted values are
// collected in Comment.Diagnostics. This option discards them after a
// successful parse.
func WithIgnoreDiagnostics() Option {
	return func(o *parseOptions) {
		o.ignoreDiagnostics = true
	}
}

// WithMaxFieldSize overrides the sanity bound on a single record's declared
// length. Records declaring a larger length are dropped as malformed.
//
// The default bound is generous enough for base64-encoded cover art; lower
// it when parsing untrusted input with no legitimate large fields:
//
//	comment, err := vorbistag.ParseVorbis(data,
//	    vorbistag.WithMaxFieldSize(1<<16),
//	)
func WithMaxFieldSize(n uint32) Option {
	return func(o *parseOptions) {
		o.maxFieldSize = n
	}
}
