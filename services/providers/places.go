// File: services/providers/places.go
package providers

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GooglePlacesProvider resolves attractions through the Places text search
// API.
type GooglePlacesProvider struct {
	client *maps.Client
}

func NewGooglePlacesProvider(apiKey string) (*GooglePlacesProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GooglePlacesProvider{client: client}, nil
}

// TopAttractions returns up to five attraction names for a city.
func (p *GooglePlacesProvider) TopAttractions(ctx context.Context, city string) ([]string, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("top tourist attractions in %s", city),
		Language: "en",
	}

	resp, err := p.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	names := make([]string, 0, 5)
	for _, result := range resp.Results {
		names = append(names, result.Name)
		if len(names) == 5 {
			break
		}
	}
	return names, nil
}
