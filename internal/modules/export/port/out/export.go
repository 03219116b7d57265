package out

import (
	"context"

	"tally/internal/modules/export/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Render(ctx context.Context, manifest domain.Manifest, input domain.RenderRequest) (domain.RenderResult, error)
}

// ReportSource supplies the already-aggregated payloads the exporters
// render. Implemented against the report module.
type ReportSource interface {
	Day(ctx context.Context, label string) (domain.ReportPayload, error)
	Month(ctx context.Context, label string) (domain.ReportPayload, error)
	History(ctx context.Context, limit int) (domain.ReportPayload, error)
}
