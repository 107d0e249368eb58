package pipeline

import (
	"context"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
)

// Choropleth enriches term and shapes the result as a state-level map.
func (p *Pipeline) Choropleth(ctx context.Context, term string) (domain.Choropleth, error) {
	e, err := p.Enrich(ctx, term)
	if err != nil {
		return domain.Choropleth{}, err
	}
	return domain.BuildChoropleth(e.Term, e.Rows), nil
}

// Scatter enriches term and plots its popularity against characteristic c. An
// unknown characteristic fails before the provider is called.
func (p *Pipeline) Scatter(ctx context.Context, term string, c domain.Characteristic) (domain.ScatterChart, error) {
	c, err := domain.ParseCharacteristic(string(c))
	if err != nil {
		return domain.ScatterChart{}, err
	}

	e, err := p.Enrich(ctx, term)
	if err != nil {
		return domain.ScatterChart{}, err
	}

	chart, err := domain.BuildScatter(e.Term, e.Rows, c)
	if err != nil {
		return domain.ScatterChart{}, err
	}
	if chart.TrendlineOmitted {
		p.logger.Debug("trendline omitted", "term", e.Term, "characteristic", string(c))
		p.metrics.TrendlinesOmitted.Inc()
	}
	return chart, nil
}
