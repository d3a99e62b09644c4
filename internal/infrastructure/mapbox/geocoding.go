package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/route-sequencing-service/internal/domain"
	"go.uber.org/zap"
)

// Forward - прямое геокодирование адреса через Mapbox Geocoding v5.
// Возвращает nil, если ничего не найдено.
func (c *Client) Forward(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL,
		url.PathEscape(query),
		params.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute geocoding request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox geocoding error: status %d", resp.StatusCode)
	}

	var geoResp domain.GeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(geoResp.Features) == 0 {
		return nil, nil
	}

	feature := geoResp.Features[0]
	if len(feature.Center) != 2 {
		return nil, fmt.Errorf("mapbox geocoding: unexpected center %v", feature.Center)
	}

	return &domain.GeocodeResult{
		Query:     query,
		PlaceName: feature.PlaceName,
		Lat:       feature.Center[1],
		Lng:       feature.Center[0],
	}, nil
}
