package source

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path given to YAMLFile points to
// a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// YAMLFile returns a Source reading a YAML settings document from disk.
// The file is read on every Load, consistent with the pull-based resolution
// model; hosts that want a stable snapshot should Load once and wrap the
// result in Static.
func YAMLFile(fpath string, opts ...Option) Source {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	return Func(func() (map[string]any, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		slog.Debug("settings document loaded",
			slog.String("path", cleanPath),
			slog.Int("bytes", len(data)),
		)

		return parseYAML(data, o.section)
	})
}
