package logger

import (
	"log/slog"
	"time"
)

// LogSync logs one sync round for a watched collection.
func LogSync(collection string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "sync"),
		slog.String("collection", collection),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Push failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Push completed", attrs...)
	}
}

// LogQuery logs one database operation. Successful queries go out at debug
// level; extras carries operation-specific attrs like affected row counts.
func LogQuery(operation, query string, duration time.Duration, err error, extras ...any) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("query", query),
		slog.Duration("took", duration),
	}
	attrs = append(attrs, extras...)

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Debug("Query executed", attrs...)
	}
}
