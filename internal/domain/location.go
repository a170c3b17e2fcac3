package domain

import (
	"github.com/google/uuid"
)

// District is a validated administrative district name. Values other than
// DistrictUnsupported always come from the closed master list.
type District string

const DistrictUnsupported District = "Unsupported"

func (d District) Supported() bool {
	return d != DistrictUnsupported && d != ""
}

type ResolutionMethod string

const (
	MethodGPS     ResolutionMethod = "gps"
	MethodIP      ResolutionMethod = "ip"
	MethodCache   ResolutionMethod = "cache"
	MethodManual  ResolutionMethod = "manual"
	MethodDefault ResolutionMethod = "default"
)

// Signal is a raw location input. Exactly one variant is active per
// resolution attempt.
type Signal interface {
	signal()
}

type Coordinates struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Accuracy float64 `json:"accuracy,omitempty"`
}

type CachedDistrict struct {
	Name string `json:"name"`
}

type ManualDistrict struct {
	Name string `json:"name"`
}

type IPDerivedCity struct {
	Name string `json:"name"`
}

func (Coordinates) signal()    {}
func (CachedDistrict) signal() {}
func (ManualDistrict) signal() {}
func (IPDerivedCity) signal()  {}

// ResolutionResult is immutable; a new resolution replaces the old one.
// RequestID lets callers discard results superseded by a later request.
type ResolutionResult struct {
	RequestID  uuid.UUID        `json:"request_id"`
	District   District         `json:"district"`
	Method     ResolutionMethod `json:"method"`
	Confidence float64          `json:"confidence"`
}

func (r ResolutionResult) Supported() bool {
	return r.District.Supported()
}
