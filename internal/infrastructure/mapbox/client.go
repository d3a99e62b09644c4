package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const providerName = "mapbox"

// Client - клиент Mapbox API: матрица маршрутов и прямое геокодирование
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	maxPoints   int
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент для Mapbox API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) *Client {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.DrivingProfile,
		maxPoints:   cfg.MaxMatrixPoints,
		limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
		logger:      logger,
	}
}

func (c *Client) Name() string {
	return providerName
}

// GetMatrix возвращает матрицу длительностей и расстояний между всеми локациями
// одним запросом к Directions Matrix API. null в ответе означает недостижимую пару.
func (c *Client) GetMatrix(ctx context.Context, locations []domain.Location) (*domain.TravelMatrix, error) {
	n := len(locations)

	// API принимает минимум 2 координаты
	if n < 2 {
		return domain.NewTravelMatrix(n), nil
	}

	// Проверка лимита Mapbox (25 точек максимум)
	if c.maxPoints > 0 && n > c.maxPoints {
		return nil, fmt.Errorf("%w: %d coordinates exceed mapbox limit of %d",
			domain.ErrProviderUnavailable, n, c.maxPoints)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrProviderUnavailable, err)
	}

	coordinates := make([]string, n)
	for i, loc := range locations {
		coordinates[i] = fmt.Sprintf("%f,%f", loc.Lng, loc.Lat)
	}

	params := url.Values{}
	params.Set("annotations", "duration,distance")
	params.Set("access_token", c.accessToken)

	reqURL := fmt.Sprintf("%s/directions-matrix/v1/%s/%s?%s",
		c.baseURL,
		c.profile,
		strings.Join(coordinates, ";"),
		params.Encode(),
	)

	c.logger.Debug("Calling Mapbox Matrix API",
		zap.String("profile", c.profile),
		zap.Int("coordinates_count", n))

	start := time.Now()
	matrixResp, err := c.fetchMatrix(ctx, reqURL)
	metrics.ProviderLatency.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCalls.WithLabelValues(providerName, "error").Inc()
		c.logger.Error("Mapbox Matrix API call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: mapbox: %v", domain.ErrProviderUnavailable, err)
	}

	m, err := domain.MatrixFromRows(n, matrixResp.Durations, matrixResp.Distances)
	if err != nil {
		metrics.ProviderCalls.WithLabelValues(providerName, "error").Inc()
		c.logger.Error("Mapbox returned malformed matrix", zap.Error(err))
		return nil, fmt.Errorf("%w: mapbox: %v", domain.ErrProviderUnavailable, err)
	}

	metrics.ProviderCalls.WithLabelValues(providerName, "ok").Inc()
	c.logger.Debug("Mapbox Matrix API call successful",
		zap.Int("rows", m.Size()),
		zap.Duration("elapsed", time.Since(start)))

	return m, nil
}

func (c *Client) fetchMatrix(ctx context.Context, reqURL string) (*domain.MatrixResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}

	var matrixResp domain.MatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrixResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if matrixResp.Code != "Ok" {
		return nil, fmt.Errorf("api returned code %q: %s", matrixResp.Code, matrixResp.Message)
	}

	return &matrixResp, nil
}
