package varde

import (
	"errors"
	"fmt"
	"strings"
)

// ErrImproperlyConfigured is the umbrella error for configuration mistakes.
// Every error type in this package unwraps to it, so hosts can treat any
// misconfiguration uniformly with errors.Is and surface the message to
// operators as-is.
var ErrImproperlyConfigured = errors.New("improperly configured")

// ErrSettingsReadOnly is wrapped by Object.Set: settings cannot be assigned
// once declared.
var ErrSettingsReadOnly = errors.New("settings are read-only")

// ErrNotCallable is wrapped when a FACTORY path resolves to something that
// is not a supported factory function.
var ErrNotCallable = errors.New("factory is not callable")

// RequiredSettingError reports settings that must be provided but were not.
// Paths holds the full dotted path of every missing setting or factory
// parameter.
type RequiredSettingError struct {
	Paths []string
}

// Error implements the error interface.
func (e *RequiredSettingError) Error() string {
	if len(e.Paths) == 1 {
		return "required setting: " + e.Paths[0]
	}

	return "required settings: " + strings.Join(e.Paths, ", ")
}

// Unwrap implements the implicit interface for usage with errors.Is.
func (e *RequiredSettingError) Unwrap() error {
	return ErrImproperlyConfigured
}

// InvalidSettingError reports a setting path that has no meaning to its
// consumer, such as a factory parameter the factory does not accept.
type InvalidSettingError struct {
	Path string
}

// Error implements the error interface.
func (e *InvalidSettingError) Error() string {
	return "invalid setting: " + e.Path
}

// Unwrap implements the implicit interface for usage with errors.Is.
func (e *InvalidSettingError) Unwrap() error {
	return ErrImproperlyConfigured
}

// UnknownSettingError reports access to a name the schema does not declare.
type UnknownSettingError struct {
	Path string
}

// Error implements the error interface.
func (e *UnknownSettingError) Error() string {
	return "unknown setting: " + e.Path
}

// Unwrap implements the implicit interface for usage with errors.Is.
func (e *UnknownSettingError) Unwrap() error {
	return ErrImproperlyConfigured
}

// WrongTypeError reports a raw value whose shape does not match what the
// declared setting expects, for example a scalar where a merged-map setting
// needs a mapping.
type WrongTypeError struct {
	Path string
	Want string
	Got  any
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %T", e.Path, e.Want, e.Got)
}

// Unwrap implements the implicit interface for usage with errors.Is.
func (e *WrongTypeError) Unwrap() error {
	return ErrImproperlyConfigured
}
