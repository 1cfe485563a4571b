// Package logger wraps zap with a process-wide sugared logger and an atomic level.
// Loggers can be carried in a context.Context, so call sites log through
// helpers such as Infof(ctx, ...) and pick up names and fields attached upstream.
package logger
