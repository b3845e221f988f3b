// Package logging provides structured JSON logging on top of log/slog for
// varde's supporting packages. The settings-resolution core itself never
// logs; only the loading and DI layers do.
package logging
