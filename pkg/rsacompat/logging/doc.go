// Package logging provides a minimal logging facade for rsacompat.
//
// The Logger interface wraps the subset of log/slog the adapter and its
// collaborators need:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New(nil) binds to slog.Default(); pass a configured *slog.Logger to route
// records elsewhere:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	rsacompat.SetLogger(logging.New(slog.New(handler)))
//
// # Redaction
//
// RSA component values are never logged. Use Redacted to record that a value
// was intentionally left out:
//
//	logger.Debug(ctx, "imported key", logging.Redacted("d"), "bits", 2048)
//	// d="[redacted]" bits=2048
package logging
