package controller

import (
	"fmt"

	"github.com/agrovision/cropadvisor/internal/domain"
)

// SignalRequest is the wire shape of a location signal. Exactly one variant
// per request, selected by Type.
type SignalRequest struct {
	Type     string  `json:"type" validate:"required,oneof=coordinates cached manual ip_city"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
	Accuracy float64 `json:"accuracy,omitempty"`
	Name     string  `json:"name,omitempty"`
}

func (r SignalRequest) toSignal() (domain.Signal, error) {
	switch r.Type {
	case "coordinates":
		return domain.Coordinates{Lat: r.Lat, Lon: r.Lon, Accuracy: r.Accuracy}, nil
	case "cached":
		return domain.CachedDistrict{Name: r.Name}, nil
	case "manual":
		return domain.ManualDistrict{Name: r.Name}, nil
	case "ip_city":
		return domain.IPDerivedCity{Name: r.Name}, nil
	}
	return nil, fmt.Errorf("unknown signal type %q", r.Type)
}
