package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/errs"
)

var (
	ErrAddressNotFound = errs.New("address could not be geocoded")
	ErrOutOfArea       = errs.New("address is outside the service area")
)

// Geocoder resolves street addresses to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// GoogleGeocoder calls the Google Maps Geocoding API.
type GoogleGeocoder struct {
	cfg    config.GeocodeConfig
	client *http.Client
}

func NewGoogleGeocoder(cfg config.GeocodeConfig) *GoogleGeocoder {
	return &GoogleGeocoder{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.cfg.APIKey)
	params.Set("language", "zh-TW")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, errs.Wrap(err, "failed to build geocode request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, 0, errs.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, errs.New(fmt.Sprintf("geocode API returned status %d", resp.StatusCode))
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, errs.Wrap(err, "failed to decode geocode response")
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return 0, 0, ErrAddressNotFound
	}

	loc := body.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

const earthRadiusKm = 6371.0

// DistanceKm computes the haversine great-circle distance between two points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ServiceArea rejects addresses beyond the dispatch radius from the depot.
type ServiceArea struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

func NewServiceArea(cfg config.WorkforceConfig) ServiceArea {
	return ServiceArea{Lat: cfg.ServiceLat, Lng: cfg.ServiceLng, RadiusKm: cfg.ServiceRadius}
}

func (a ServiceArea) Contains(lat, lng float64) bool {
	return DistanceKm(a.Lat, a.Lng, lat, lng) <= a.RadiusKm
}
