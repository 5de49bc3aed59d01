package welldata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/strata/internal/complog"
)

// Fetcher defines the read operations the viewer needs from the compute
// service. It is implemented by *Client and can be faked in tests.
type Fetcher interface {
	ListWells(ctx context.Context, workarea string) ([]Well, error)
	ListCurves(ctx context.Context, workarea, well string) ([]CurveInfo, error)
	FetchCompositeData(ctx context.Context, workarea, well string, curves []string, filter DepthFilter) (*complog.CompositeLogData, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the compute service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:20022"
	defaultUserAgent = "strata/0.1"
	requestTimeout   = 15 * time.Second
	maxDetailBytes   = 512
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListWells returns the wells of a workarea ordered by name.
func (c *Client) ListWells(ctx context.Context, workarea string) ([]Well, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload wellListResponse
	if err := c.get(ctx, "/api/well/list", workareaQuery(workarea), &payload); err != nil {
		return nil, err
	}
	return payload.Wells, nil
}

// ListCurves returns the curves stored for a well.
func (c *Client) ListCurves(ctx context.Context, workarea, well string) ([]CurveInfo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload curveListResponse
	if err := c.get(ctx, wellPath(well, "curves"), workareaQuery(workarea), &payload); err != nil {
		return nil, err
	}
	return payload.Curves, nil
}

// FetchCurveData returns depth-ordered samples for the named curves.
func (c *Client) FetchCurveData(ctx context.Context, workarea, well string, curves []string, filter DepthFilter) (map[string][]complog.Sample, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	names := make([]string, 0, len(curves))
	for _, name := range curves {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return map[string][]complog.Sample{}, nil
	}
	values := workareaQuery(workarea)
	values.Set("curves", strings.Join(names, ","))
	if filter.Min != nil {
		values.Set("depth_min", strconv.FormatFloat(*filter.Min, 'f', -1, 64))
	}
	if filter.Max != nil {
		values.Set("depth_max", strconv.FormatFloat(*filter.Max, 'f', -1, 64))
	}
	var payload curveDataResponse
	if err := c.get(ctx, wellPath(well, "curve-data"), values, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		payload.Data = map[string][]complog.Sample{}
	}
	return payload.Data, nil
}

// FetchLayers returns the formation intervals of a well.
func (c *Client) FetchLayers(ctx context.Context, workarea, well string) ([]complog.Layer, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload layersResponse
	if err := c.get(ctx, wellPath(well, "layers"), workareaQuery(workarea), &payload); err != nil {
		return nil, err
	}
	return payload.Layers, nil
}

// FetchLithology returns the described rock intervals of a well.
func (c *Client) FetchLithology(ctx context.Context, workarea, well string) ([]complog.LithologyInterval, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload lithologyResponse
	if err := c.get(ctx, wellPath(well, "lithology"), workareaQuery(workarea), &payload); err != nil {
		return nil, err
	}
	return payload.Lithology, nil
}

// FetchInterpretations returns the interpretation conclusions of a well.
func (c *Client) FetchInterpretations(ctx context.Context, workarea, well string) ([]complog.Interpretation, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload interpretationResponse
	if err := c.get(ctx, wellPath(well, "interpretation"), workareaQuery(workarea), &payload); err != nil {
		return nil, err
	}
	return payload.Interpretations, nil
}

// FetchDiscreteCurves returns discrete curves grouped by name.
func (c *Client) FetchDiscreteCurves(ctx context.Context, workarea, well string) (map[string][]complog.Sample, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload discreteCurvesResponse
	if err := c.get(ctx, wellPath(well, "discrete-curves"), workareaQuery(workarea), &payload); err != nil {
		return nil, err
	}
	return payload.DiscreteCurves, nil
}

// FetchCompositeData loads everything a composite log draws for one well.
// The five requests run concurrently and the first failure cancels the
// rest. Discrete curves are merged into the curve map; a continuous curve
// of the same name wins.
func (c *Client) FetchCompositeData(ctx context.Context, workarea, well string, curves []string, filter DepthFilter) (*complog.CompositeLogData, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(well) == "" {
		return nil, fmt.Errorf("well name required")
	}

	var (
		data     = &complog.CompositeLogData{}
		discrete map[string][]complog.Sample
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Curves, err = c.FetchCurveData(ctx, workarea, well, curves, filter)
		if err != nil {
			return fmt.Errorf("curve data: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		data.Layers, err = c.FetchLayers(ctx, workarea, well)
		if err != nil {
			return fmt.Errorf("layers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		data.Lithology, err = c.FetchLithology(ctx, workarea, well)
		if err != nil {
			return fmt.Errorf("lithology: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		data.Interpretations, err = c.FetchInterpretations(ctx, workarea, well)
		if err != nil {
			return fmt.Errorf("interpretations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		discrete, err = c.FetchDiscreteCurves(ctx, workarea, well)
		if err != nil {
			return fmt.Errorf("discrete curves: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", well, err)
	}

	for name, samples := range discrete {
		if _, ok := data.Curves[name]; !ok {
			data.Curves[name] = samples
		}
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	rel.RawQuery = query.Encode()
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &APIError{Path: path, Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readDetail extracts the "detail" field of an error body when present.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxDetailBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if s, ok := payload.Detail.(string); ok {
			return s
		}
	}
	return ""
}

func workareaQuery(workarea string) url.Values {
	values := url.Values{}
	values.Set("workarea", workarea)
	return values
}

func wellPath(well, endpoint string) string {
	return "/api/well/" + url.PathEscape(well) + "/" + endpoint
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
