package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/config"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient     *http.Client
	baseURL        string
	profile        string
	maxCoordinates int
	logger         *zap.Logger
}

// NewClient creates a routing client for an OSRM compatible service
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		profile:        cfg.Profile,
		maxCoordinates: cfg.MaxCoordinates,
		logger:         logger,
	}
}

// QueryRoute routes through coords in the given order
func (c *client) QueryRoute(ctx context.Context, coords []domain.Coordinate) (*domain.QueriedPath, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("at least two coordinates are required, got %d", len(coords))
	}
	if c.maxCoordinates > 0 && len(coords) > c.maxCoordinates {
		return nil, fmt.Errorf("%d coordinates exceed routing limit of %d points", len(coords), c.maxCoordinates)
	}

	points := make([]string, len(coords))
	for i, coord := range coords {
		points[i] = fmt.Sprintf("%f,%f", coord.Lng, coord.Lat)
	}

	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson&annotations=distance,duration&steps=false",
		c.baseURL,
		c.profile,
		strings.Join(points, ";"),
	)

	c.logger.Debug("Calling routing service",
		zap.String("url", url),
		zap.Int("coordinates", len(coords)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Routing request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Routing service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("routing API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var routeResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if routeResp.Code != "Ok" {
		return nil, fmt.Errorf("routing API returned code: %s %s", routeResp.Code, routeResp.Message)
	}
	if len(routeResp.Routes) == 0 {
		return nil, fmt.Errorf("routing API returned no route")
	}

	path, err := toQueriedPath(&routeResp, coords)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Routing call successful",
		zap.Float64("distance", path.Distance),
		zap.Int("waypoints", len(path.Waypoints)))

	return path, nil
}

// toQueriedPath flattens the legs of the first route into waypoints. Annotation
// segments become geometry waypoints; the last segment of every leg ends at a
// stop waypoint. Legs without annotations contribute a single stop waypoint.
func toQueriedPath(resp *routeResponse, requested []domain.Coordinate) (*domain.QueriedPath, error) {
	r := resp.Routes[0]
	if len(r.Legs) != len(requested)-1 {
		return nil, fmt.Errorf("routing API returned %d legs for %d coordinates", len(r.Legs), len(requested))
	}

	stopAt := func(i int) (float64, float64) {
		if i < len(resp.Waypoints) {
			return resp.Waypoints[i].Location[1], resp.Waypoints[i].Location[0]
		}
		return requested[i].Lat, requested[i].Lng
	}

	segments := 0
	for _, l := range r.Legs {
		segments += len(l.Annotation.Distance)
	}
	// geometry nodes line up with annotation segments only if there is one more node than segments
	aligned := len(r.Geometry.Coordinates) == segments+1
	cursor := 1

	lat, lng := stopAt(0)
	path := &domain.QueriedPath{
		Waypoints: []domain.Waypoint{{Lat: lat, Lng: lng, Stop: true}},
		Distance:  r.Distance,
		Duration:  r.Duration,
	}

	for i, l := range r.Legs {
		if len(l.Annotation.Distance) == 0 {
			lat, lng := stopAt(i + 1)
			path.Waypoints = append(path.Waypoints, domain.Waypoint{
				Lat: lat, Lng: lng, Dist: l.Distance, Dur: l.Duration, Stop: true,
			})
			continue
		}

		for s, dist := range l.Annotation.Distance {
			wp := domain.Waypoint{Dist: dist}
			if s < len(l.Annotation.Duration) {
				wp.Dur = l.Annotation.Duration[s]
			}
			if aligned {
				wp.Lat, wp.Lng = r.Geometry.Coordinates[cursor][1], r.Geometry.Coordinates[cursor][0]
			}
			cursor++
			if s == len(l.Annotation.Distance)-1 {
				wp.Stop = true
				wp.Lat, wp.Lng = stopAt(i + 1)
			}
			path.Waypoints = append(path.Waypoints, wp)
		}
	}

	return path, nil
}
