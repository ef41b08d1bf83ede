package ports

import (
	"context"

	"launchdash/domain/launch"
)

// LaunchSource loads the launch table once at startup.
// Implementations fail with an IO_ERROR or SCHEMA_ERROR AppError; callers treat any error as fatal.
type LaunchSource interface {
	Load(ctx context.Context) (*launch.Table, error)

	// Describe names the source for logs, e.g. the file path or database table
	Describe() string
}
