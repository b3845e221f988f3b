package di

import (
	"github.com/0xalexb/varde/importer"
	"github.com/0xalexb/varde/source"
)

// Options holds configuration for a settings module.
type Options struct {
	Source   source.Source
	Loader   importer.Loader
	LogLevel string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithSource sets the source the module loads its raw mapping from.
func WithSource(src source.Source) Option {
	return func(opts *Options) {
		opts.Source = src
	}
}

// WithYAMLFile is shorthand for WithSource(source.YAMLFile(path, opts...)).
func WithYAMLFile(path string, opts ...source.Option) Option {
	return func(o *Options) {
		o.Source = source.YAMLFile(path, opts...)
	}
}

// WithLoader overrides the module loader used by import-string and
// object-factory settings. The default is the process-wide registry.
func WithLoader(loader importer.Loader) Option {
	return func(opts *Options) {
		opts.Loader = loader
	}
}

// WithLogLevel sets the log level for the module's own logging.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
