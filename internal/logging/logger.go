// Package logging defines the structured logger shared by the vibe tracker
// server components. SlogLogger backs it with log/slog; NopLogger discards.
//
// Components derive a child logger tagged with their module name:
//
//	logger := logging.NewJSONLogger(os.Stdout, "info").With("module", "http_server")
//	logger.Warn(ctx, "goal update rejected", "id", id, "revision", rev)
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "vibe created", "id", vibe.ID, "mood", vibe.Mood)
type Logger interface {
	// Debug logs verbose diagnostics, normally disabled in production.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
