package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/observability"
)

// SnapshotSink receives every successful enrichment.
type SnapshotSink interface {
	Publish(ctx context.Context, snap domain.Snapshot) error
}

// Pipeline runs provider -> join -> sink for one search term. It holds no
// per-request state, so a single Pipeline serves concurrent requests.
type Pipeline struct {
	provider domain.PopularityProvider
	refs     domain.ReferenceLookup
	sink     SnapshotSink
	join     domain.JoinOptions
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline. sink may be nil to disable snapshot publishing.
func New(provider domain.PopularityProvider, refs domain.ReferenceLookup, sink SnapshotSink, join domain.JoinOptions, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		provider: provider,
		refs:     refs,
		sink:     sink,
		join:     join,
		logger:   logger,
		metrics:  metrics,
	}
}

// Enrich fetches popularity for term and joins it against the reference data.
// Provider failures are returned unchanged; sink failures are only logged.
func (p *Pipeline) Enrich(ctx context.Context, term string) (domain.Enrichment, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.Enrichment{}, fmt.Errorf("%w: empty term", domain.ErrInvalidTerm)
	}

	records, err := p.provider.InterestByRegion(ctx, term)
	if err != nil {
		return domain.Enrichment{}, err
	}

	rows, dropped, err := domain.Join(records, p.refs, p.join)
	if err != nil {
		return domain.Enrichment{}, err
	}
	if len(dropped) > 0 {
		p.logger.Debug("states dropped by join", "term", term, "dropped", dropped)
		p.metrics.StatesDropped.Add(float64(len(dropped)))
	}
	p.metrics.EnrichedRows.Observe(float64(len(rows)))

	e := domain.Enrichment{Term: term, Rows: rows, Dropped: dropped}
	p.publish(ctx, e)
	return e, nil
}

func (p *Pipeline) publish(ctx context.Context, e domain.Enrichment) {
	if p.sink == nil {
		return
	}
	snap := domain.NewSnapshot(e)
	if err := p.sink.Publish(ctx, snap); err != nil {
		p.logger.Warn("publish snapshot failed", "error", err, "term", e.Term, "snapshot_id", snap.ID)
		p.metrics.SnapshotErrors.Inc()
		return
	}
	p.metrics.SnapshotsPublished.Inc()
}
