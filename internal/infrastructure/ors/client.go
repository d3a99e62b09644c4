package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"go.uber.org/zap"
)

const providerName = "ors"

type matrixRequest struct {
	Locations [][]float64 `json:"locations"`
	Metrics   []string    `json:"metrics"`
}

// Client - провайдер матрицы на OpenRouteService /v2/matrix
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	profile    string
	logger     *zap.Logger
}

// NewClient создает клиент OpenRouteService
func NewClient(cfg *config.ORSConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		profile: cfg.Profile,
		logger:  logger,
	}
}

func (c *Client) Name() string {
	return providerName
}

// GetMatrix запрашивает полную матрицу всех локаций одним POST-запросом.
// Без sources/destinations ORS возвращает n x n.
func (c *Client) GetMatrix(ctx context.Context, locations []domain.Location) (*domain.TravelMatrix, error) {
	n := len(locations)
	if n < 2 {
		return domain.NewTravelMatrix(n), nil
	}

	body := matrixRequest{
		Locations: make([][]float64, n),
		Metrics:   []string{"duration", "distance"},
	}
	for i, loc := range locations {
		body.Locations[i] = []float64{loc.Lng, loc.Lat}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	start := time.Now()
	mr, err := c.fetchMatrix(ctx, payload)
	metrics.ProviderLatency.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCalls.WithLabelValues(providerName, "error").Inc()
		c.logger.Error("ORS matrix request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: ors: %v", domain.ErrProviderUnavailable, err)
	}

	m, err := domain.MatrixFromRows(n, mr.Durations, mr.Distances)
	if err != nil {
		metrics.ProviderCalls.WithLabelValues(providerName, "error").Inc()
		c.logger.Error("ORS returned malformed matrix", zap.Error(err))
		return nil, fmt.Errorf("%w: ors: %v", domain.ErrProviderUnavailable, err)
	}

	metrics.ProviderCalls.WithLabelValues(providerName, "ok").Inc()
	return m, nil
}

func (c *Client) fetchMatrix(ctx context.Context, payload []byte) (*domain.ORSMatrixResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/matrix/%s", c.baseURL, c.profile)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var mr domain.ORSMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}
	return &mr, nil
}
