package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/observability"
)

// Query parameters fixed by the dashboard: all categories, web search, last
// five years, United States.
const (
	timeframe   = "today 5-y"
	geo         = "US"
	category    = 0
	property    = ""
	geoMapID    = "GEO_MAP"
	maxBodySize = 4 << 20
)

// Client implements domain.PopularityProvider using the Google Trends web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	homeURL    string
	language   string
	tz         int
	metrics    *observability.Metrics
	logger     *slog.Logger

	primeMu sync.Mutex
	primed  bool
}

// NewClient creates a Google Trends client. timeout bounds each HTTP request.
func NewClient(baseURL string, timeout time.Duration, language string, tz int, metrics *observability.Metrics, logger *slog.Logger) *Client {
	jar, _ := cookiejar.New(nil) // only fails on a non-nil options error
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		homeURL:  homeURL(baseURL),
		language: language,
		tz:       tz,
		metrics:  metrics,
		logger:   logger,
	}
}

// InterestByRegion returns each state's relative search interest for term.
// Failures are *domain.ProviderError wrapping ErrInvalidTerm or ErrProviderUnavailable.
func (c *Client) InterestByRegion(ctx context.Context, term string) ([]domain.PopularityRecord, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, &domain.ProviderError{Term: term, Err: fmt.Errorf("%w: empty term", domain.ErrInvalidTerm)}
	}

	c.primeCookies(ctx)
	w, err := c.geoMapWidget(ctx, term)
	if err != nil {
		return nil, err
	}
	return c.comparedGeo(ctx, term, w)
}

func (c *Client) geoMapWidget(ctx context.Context, term string) (widget, error) {
	req, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{Keyword: term, Geo: geo, Time: timeframe}},
		Category:       category,
		Property:       property,
	})
	if err != nil {
		return widget{}, fmt.Errorf("encode explore request: %w", err)
	}

	body, err := c.get(ctx, "explore", term, c.endpoint("/explore", url.Values{"req": {string(req)}}))
	if err != nil {
		return widget{}, err
	}

	var resp exploreResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return widget{}, c.unavailable("explore", term, false, fmt.Errorf("decode explore response: %w", err))
	}
	for _, w := range resp.Widgets {
		if w.ID == geoMapID {
			c.metrics.ProviderRequests.WithLabelValues("explore", "success").Inc()
			return w, nil
		}
	}
	c.metrics.ProviderRequests.WithLabelValues("explore", "invalid").Inc()
	return widget{}, &domain.ProviderError{Term: term, Err: fmt.Errorf("%w: no regional data", domain.ErrInvalidTerm)}
}

func (c *Client) comparedGeo(ctx context.Context, term string, w widget) ([]domain.PopularityRecord, error) {
	params := url.Values{
		"req":   {string(w.Request)},
		"token": {w.Token},
	}
	body, err := c.get(ctx, "comparedgeo", term, c.endpoint("/widgetdata/comparedgeo", params))
	if err != nil {
		return nil, err
	}

	var resp comparedGeoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, c.unavailable("comparedgeo", term, false, fmt.Errorf("decode comparedgeo response: %w", err))
	}

	records := make([]domain.PopularityRecord, 0, len(resp.Default.GeoMapData))
	for _, e := range resp.Default.GeoMapData {
		var score float64
		if len(e.Value) > 0 {
			score = e.Value[0]
		}
		records = append(records, domain.PopularityRecord{State: e.GeoName, Score: score})
	}
	c.metrics.ProviderRequests.WithLabelValues("comparedgeo", "success").Inc()
	c.logger.Debug("trends interest by region", "term", term, "regions", len(records))
	return records, nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	params.Set("hl", c.language)
	params.Set("tz", strconv.Itoa(c.tz))
	return c.baseURL + path + "?" + params.Encode()
}

// primeCookies fetches the Trends home page once so the jar holds the session
// cookie Google expects on explore calls. A failed attempt is retried on the
// next call and never fails the current one.
func (c *Client) primeCookies(ctx context.Context) {
	if c.homeURL == "" {
		return
	}
	c.primeMu.Lock()
	defer c.primeMu.Unlock()
	if c.primed {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.homeURL, nil)
	if err != nil {
		return
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("trends cookie bootstrap failed", "error", err)
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	resp.Body.Close()
	c.primed = true
}

// homeURL is the Trends landing page on the API host: scheme and host of
// baseURL with path "/" and geo=US.
func homeURL(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/", RawQuery: "geo=" + geo}).String()
}

// get performs one request and strips the anti-XSSI prefix from the body.
// Success is counted by the caller once the body has been decoded.
func (c *Client) get(ctx context.Context, stage, term, fullURL string) ([]byte, error) {
	start := time.Now()
	defer func() {
		c.metrics.ProviderDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unavailable(stage, term, isTimeout(ctx, err), fmt.Errorf("%s request: %w", stage, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, c.unavailable(stage, term, true, fmt.Errorf("read %s response: %w", stage, err))
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, c.unavailable(stage, term, true, fmt.Errorf("status %d", resp.StatusCode))
	default:
		c.metrics.ProviderRequests.WithLabelValues(stage, "invalid").Inc()
		return nil, &domain.ProviderError{
			Term: term,
			Err:  fmt.Errorf("%w: %s status %d: %s", domain.ErrInvalidTerm, stage, resp.StatusCode, truncate(body, 200)),
		}
	}

	return stripXSSI(body), nil
}

func (c *Client) unavailable(stage, term string, retryable bool, err error) error {
	c.metrics.ProviderRequests.WithLabelValues(stage, "unavailable").Inc()
	c.logger.Warn("trends request failed", "stage", stage, "term", term, "retryable", retryable, "error", err)
	return &domain.ProviderError{
		Term:      term,
		Retryable: retryable,
		Err:       fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err),
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// stripXSSI removes the ")]}'" guard (optionally followed by a comma) that
// Google prepends to JSON responses.
func stripXSSI(b []byte) []byte {
	b = bytes.TrimSpace(b)
	b = bytes.TrimPrefix(b, []byte(")]}'"))
	b = bytes.TrimPrefix(b, []byte(","))
	return bytes.TrimSpace(b)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

// Google Trends request and response types.

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Geo     string `json:"geo"`
	Time    string `json:"time"`
}

type exploreResponse struct {
	Widgets []widget `json:"widgets"`
}

type widget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

type comparedGeoResponse struct {
	Default struct {
		GeoMapData []geoMapEntry `json:"geoMapData"`
	} `json:"default"`
}

type geoMapEntry struct {
	GeoCode string    `json:"geoCode"` // "US-AL"
	GeoName string    `json:"geoName"`
	Value   []float64 `json:"value"`
	HasData []bool    `json:"hasData"`
}
