package di

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/varde"
	"github.com/0xalexb/varde/logging"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the settings module name is empty.
var ErrEmptyName = errors.New("settings module name must not be empty")

// ErrNilSchema is returned when no schema is given.
var ErrNilSchema = errors.New("settings schema must not be nil")

// ErrNoSource is returned when the module has no source to load from.
var ErrNoSource = errors.New("settings module requires a source")

// NewModule creates an Fx module supplying a *varde.Object resolved from the
// configured source. The name is used as the Fx module name, the DI named
// tag, and the settings object's name, so dotted error paths start with it.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, schema *varde.Schema, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if schema == nil {
		return fx.Error(ErrNilSchema)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Source == nil {
		return fx.Error(ErrNoSource)
	}

	logger := logging.New(options.LogLevel, os.Stderr)

	provide := func() (*varde.Object, error) {
		values, err := options.Source.Load()
		if err != nil {
			return nil, fmt.Errorf("loading settings %q: %w", name, err)
		}

		var objectOpts []varde.ObjectOption
		if options.Loader != nil {
			objectOpts = append(objectOpts, varde.WithLoader(options.Loader))
		}

		logger.Debug("settings object ready",
			slog.String("name", name),
			slog.Int("keys", len(values)),
		)

		return varde.NewObject(name, values, schema, objectOpts...), nil
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(provide, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
		),
	)
}
