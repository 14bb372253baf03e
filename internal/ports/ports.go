package ports

import (
	"context"

	"ChecklistMapper/internal/domain"
)

// ChecklistSource delivers the four raw input tables.
type ChecklistSource interface {
	Fetch(ctx context.Context) (domain.RawTables, error)
}

// ExportSink persists the three final output tables.
type ExportSink interface {
	Name() string
	Write(ctx context.Context, checklist domain.Checklist) error
}

// Notifier publishes the run report to an external channel.
type Notifier interface {
	PublishReport(ctx context.Context, report string) error
}
