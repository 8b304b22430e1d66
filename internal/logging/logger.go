// Package logging defines the structured-logging contract the verifier and
// prover code log through, plus the slog-backed implementation used in
// production. Keeping the interface narrow lets tests swap in capturing or
// no-op loggers without touching slog.
package logging

import "context"

// Logger is a leveled, context-aware structured logger. The variadic args
// are alternating key-value pairs:
//
//	log.Info(ctx, "grpc server starting", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that attaches the given key-value pairs
	// to every record it emits.
	With(args ...any) Logger
}
