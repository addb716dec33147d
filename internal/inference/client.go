package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/sirupsen/logrus"
)

// Error wraps a failure from the floor-plan inference service.
// Validation failures (4xx) are permanent; transport and 5xx failures
// are retryable.
type Error struct {
	StatusCode int
	Message    string
	retryable  bool
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("inference service: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("inference service: %s", e.Message)
}

// Retryable reports whether retrying the call could succeed.
func (e *Error) Retryable() bool {
	return e.retryable
}

// RoomRequest constrains one room the model should place.
type RoomRequest struct {
	Type     string     `json:"type"`
	Centroid Coordinate `json:"centroid"`
	MinArea  *float64   `json:"min_area,omitempty"`
}

type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GenerateRequest is the wire format of the generation endpoint. The
// boundary and front door travel as WKT polygon strings.
type GenerateRequest struct {
	BoundaryWKT  string        `json:"boundary_wkt"`
	FrontDoorWKT string        `json:"front_door_wkt"`
	Rooms        []RoomRequest `json:"rooms"`
	BHKConfig    string        `json:"bhk_config,omitempty"`
	ScaleOrigin  [2]float64    `json:"scale_origin"`
}

// RoomOutput is one generated room polygon.
type RoomOutput struct {
	Type        string      `json:"type"`
	Category    int         `json:"category"`
	Coordinates [][]float64 `json:"coordinates"`
	Centroid    []float64   `json:"centroid"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Area        float64     `json:"area"`
}

// GenerateResponse is the full service reply.
type GenerateResponse struct {
	Success   bool         `json:"success"`
	Rooms     []RoomOutput `json:"rooms"`
	Boundary  [][]float64  `json:"boundary"`
	TotalArea float64      `json:"total_area"`
	Message   string       `json:"message,omitempty"`
}

// Health mirrors the service health endpoint.
type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Device      string `json:"device"`
}

// Client calls the remote GAT-Net floor-plan service. Transient
// failures are retried with linear backoff; validation failures are
// surfaced immediately.
type Client struct {
	baseURL    string
	client     *http.Client
	logger     *logrus.Logger
	maxRetries int
	retryDelay time.Duration
}

func NewClient(baseURL string, timeout time.Duration, maxRetries int, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
		maxRetries: maxRetries,
		retryDelay: 2 * time.Second,
	}
}

// EncodeBoundary converts a geographic ring into the WKT polygon string
// the service expects.
func EncodeBoundary(ring orb.Ring) string {
	return wkt.MarshalString(orb.Polygon{ring})
}

// Generate requests a floor plan for the given boundary and room
// program.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.ScaleOrigin == [2]float64{} {
		req.ScaleOrigin = [2]float64{128, 128}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.WithField("attempt", attempt).Info("Retrying floor-plan generation")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}

		resp, err := c.post(ctx, "/api/generate-floor-plan", body)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var infErr *Error
		if errors.As(err, &infErr) && !infErr.Retryable() {
			return nil, err
		}
	}
	return nil, fmt.Errorf("generation failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*GenerateResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Message: err.Error(), retryable: true}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &Error{Message: err.Error(), retryable: true}
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &Error{
			StatusCode: httpResp.StatusCode,
			Message:    string(data),
			retryable:  httpResp.StatusCode >= 500,
		}
	}

	var resp GenerateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !resp.Success {
		return nil, &Error{Message: resp.Message, retryable: false}
	}
	return &resp, nil
}

// CheckHealth queries the service health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Message: err.Error(), retryable: true}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, &Error{StatusCode: httpResp.StatusCode, Message: "health check failed", retryable: httpResp.StatusCode >= 500}
	}

	var health Health
	if err := json.NewDecoder(httpResp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decoding health response: %w", err)
	}
	return &health, nil
}
