package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPResolver queries an imagery metadata endpoint over HTTP with
// nearest preference and an outdoor-only source filter
type HTTPResolver struct {
	baseURL string
	client  *http.Client
}

// NewHTTPResolver creates a resolver against the given metadata endpoint
func NewHTTPResolver(baseURL string, timeout time.Duration) *HTTPResolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPResolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type metadataResponse struct {
	Status    string  `json:"status"` // "OK" or "ZERO_RESULTS"
	ImageryID string  `json:"imagery_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Resolve implements Resolver
func (r *HTTPResolver) Resolve(ctx context.Context, lat, lng float64, radiusM int) (*Result, error) {
	q := url.Values{}
	q.Set("location", strconv.FormatFloat(lat, 'f', 6, 64)+","+strconv.FormatFloat(lng, 'f', 6, 64))
	q.Set("radius", strconv.Itoa(radiusM))
	q.Set("preference", "nearest")
	q.Set("source", "outdoor")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imagery metadata endpoint returned %d", resp.StatusCode)
	}

	var m metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode imagery metadata: %w", err)
	}

	if m.Status != "OK" || m.ImageryID == "" {
		// No panorama near the query point
		return nil, nil
	}

	return &Result{ImageryID: m.ImageryID, Lat: m.Lat, Lng: m.Lng}, nil
}
