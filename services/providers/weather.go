// File: services/providers/weather.go
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfare/utils"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// weatherIcons maps the leading digits of an OpenWeatherMap icon code onto an
// emoji for the report header.
var weatherIcons = map[string]string{
	"01": "☀️", "02": "⛅", "03": "☁️", "04": "☁️",
	"09": "🌧️", "10": "🌦️", "11": "⛈️", "13": "❄️", "50": "🌫️",
}

// OpenWeatherProvider fetches current conditions from OpenWeatherMap.
type OpenWeatherProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherProvider(apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Report returns a ready-to-display weather summary. An unknown city is a
// normal reply, not an error; only transport and upstream failures error out.
func (p *OpenWeatherProvider) Report(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", p.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Sprintf("⚠️ City '%s' not found. Please check the spelling.", city), nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather api returned status %d", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(data.Weather) == 0 {
		return "", fmt.Errorf("weather api returned no conditions for %s", city)
	}

	return formatWeatherReport(city, data), nil
}

func formatWeatherReport(city string, data openWeatherResponse) string {
	icon, ok := weatherIcons[truncateIcon(data.Weather[0].Icon)]
	if !ok {
		icon = "🌡️"
	}
	return fmt.Sprintf("%s Weather in %s:\n• Current: %s\n• Temperature: %g°C (Feels like %g°C)\n• Humidity: %d%%\n• Wind: %g m/s",
		icon, utils.TitleCase(city), utils.TitleCase(data.Weather[0].Description),
		data.Main.Temp, data.Main.FeelsLike, data.Main.Humidity, data.Wind.Speed)
}

// Icon codes are like "01d" / "10n"; the trailing letter only flags day or
// night.
func truncateIcon(code string) string {
	if len(code) > 2 {
		return code[:2]
	}
	return code
}
