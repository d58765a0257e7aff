package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	mem "vivu/pkg/memcache"
)

type MatrixPoint struct {
	ID  string
	Lat float64
	Lng float64
}

type MatrixEdge struct {
	DistanceMeters int
}

type DistanceMatrix map[string]map[string]MatrixEdge

// PairKey identifies a directed leg for one routing profile. Item IDs may be
// client supplied, so the endpoints' coordinates are part of the key.
type PairKey struct {
	Mode string // "driving"
	A    string // item ID
	B    string
	From string // "lat,lng" rounded to 1e-5 degrees
	To   string
}

func newPairKey(mode string, a, b MatrixPoint) PairKey {
	return PairKey{Mode: mode, A: a.ID, B: b.ID, From: a.coordKey(), To: b.coordKey()}
}

func (p MatrixPoint) coordKey() string {
	return fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lng)
}

type DistanceMatrixService interface {
	ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error)
	Enabled() bool
}

// -------------- Mapbox Matrix client (distance-only) ---------------

const mapboxBaseURL = "https://api.mapbox.com"

type MapboxMatrixClient struct {
	HTTP        *http.Client
	AccessToken string
	BaseURL     string
	Cache       mem.Store[PairKey, MatrixEdge]
	DefaultTTL  time.Duration
	Profile     string // "driving"
	Log         *zap.Logger
}

type MapboxConfig struct {
	AccessToken string
	Profile     string
	CacheTTL    time.Duration
	Timeout     time.Duration
}

func NewMapboxMatrixClient(cfg MapboxConfig, cache mem.Store[PairKey, MatrixEdge], log *zap.Logger) *MapboxMatrixClient {
	profile := cfg.Profile
	if profile == "" {
		profile = "driving"
	}
	return &MapboxMatrixClient{
		HTTP:        &http.Client{Timeout: cfg.Timeout},
		AccessToken: cfg.AccessToken,
		BaseURL:     mapboxBaseURL,
		Cache:       cache,
		DefaultTTL:  cfg.CacheTTL,
		Profile:     profile,
		Log:         log,
	}
}

func (c *MapboxMatrixClient) Enabled() bool { return c.AccessToken != "" }

func (c *MapboxMatrixClient) ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error) {
	n := len(points)
	if n == 0 {
		return DistanceMatrix{}, nil
	}

	mode := c.Profile
	mat := make(DistanceMatrix, n)
	needCall := false

	for _, p := range points {
		mat[p.ID] = make(map[string]MatrixEdge, n)
	}

	// 1) cached pairs first
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				mat[points[i].ID][points[j].ID] = MatrixEdge{DistanceMeters: 0}
				continue
			}
			if v, ok := c.Cache.Get(newPairKey(mode, points[i], points[j])); ok {
				mat[points[i].ID][points[j].ID] = v
			} else {
				needCall = true
			}
		}
	}

	if !needCall {
		return mat, nil
	}

	// 2) one Mapbox Matrix call for the whole set
	coords := make([]string, 0, n)
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Lng, p.Lat))
	}
	coordStr := strings.Join(coords, ";")

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("mapbox base url: %w", err)
	}
	u.Path = fmt.Sprintf("/directions-matrix/v1/mapbox/%s/%s", mode, coordStr)
	q := url.Values{}
	q.Set("annotations", "distance")
	q.Set("sources", "all")
	q.Set("destinations", "all")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("mapbox matrix request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox matrix http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox matrix bad status: %s", resp.Status)
	}

	var payload struct {
		Distances [][]*float64 `json:"distances"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox decode: %w", err)
	}

	// 3) fill matrix and cache; unroutable pairs are left out
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if i >= len(payload.Distances) || j >= len(payload.Distances[i]) || payload.Distances[i][j] == nil {
				continue
			}
			edge := MatrixEdge{DistanceMeters: int(*payload.Distances[i][j] + 0.5)}
			mat[points[i].ID][points[j].ID] = edge
			c.Cache.Set(newPairKey(mode, points[i], points[j]), edge, c.DefaultTTL)
		}
	}

	if c.Log != nil {
		c.Log.Debug("mapbox matrix fetched", zap.Int("points", n), zap.String("profile", mode))
	}

	return mat, nil
}

// noopMatrix is used when no Mapbox token is configured.
type noopMatrix struct{}

func NewNoopMatrix() DistanceMatrixService { return noopMatrix{} }

func (noopMatrix) Enabled() bool { return false }

func (noopMatrix) ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error) {
	return DistanceMatrix{}, nil
}
