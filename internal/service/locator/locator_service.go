// Package locator turns raw location signals into a validated district or an
// explicit unsupported outcome. No failure inside the resolver ever escapes
// as an error: signal failures fall down the chain, unresolvable locations
// end in the Unsupported sentinel.
package locator

import (
	"context"
	"time"

	"github.com/agrovision/cropadvisor/internal/district"
	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/pkg/geoclient"
	"github.com/agrovision/cropadvisor/internal/pkg/ipclient"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
	"github.com/agrovision/cropadvisor/internal/pkg/sessioncache"
	"github.com/google/uuid"
)

const (
	gpsAttempts       = 3
	defaultGPSTimeout = 4 * time.Second

	confGeocoded = 0.9
	confNearest  = 0.75
	confIP       = 0.6
	confExact    = 1.0
	confDefault  = 0.2
)

type Service struct {
	geo             geoclient.Client
	ip              ipclient.Client
	cache           sessioncache.Cache
	defaultDistrict domain.District
	gpsTimeout      time.Duration
}

func NewLocatorService(
	geo geoclient.Client,
	ip ipclient.Client,
	cache sessioncache.Cache,
	defaultDistrict domain.District,
) *Service {
	return &Service{
		geo:             geo,
		ip:              ip,
		cache:           cache,
		defaultDistrict: defaultDistrict,
		gpsTimeout:      defaultGPSTimeout,
	}
}

// Resolve walks the fallback chain for one signal: GPS, then IP lookup, then
// the session's last known district, then the configured default. Every
// transition is logged as a method change. The result carries a fresh
// RequestID so callers can discard superseded resolutions.
func (s *Service) Resolve(ctx context.Context, sessionID string, sig domain.Signal) domain.ResolutionResult {
	reqID := uuid.New()

	switch v := sig.(type) {
	case domain.ManualDistrict:
		if d, ok := district.Normalize(v.Name); ok {
			return result(reqID, d, domain.MethodManual, confExact)
		}
		logger.Warnf(ctx, "manual district %q failed validation, falling back to ip", v.Name)

	case domain.CachedDistrict:
		if d, ok := district.Normalize(v.Name); ok {
			return result(reqID, d, domain.MethodCache, confExact)
		}
		logger.Warnf(ctx, "cached district %q failed validation, falling back to ip", v.Name)

	case domain.Coordinates:
		if res, terminal := s.resolveCoordinates(ctx, reqID, v); terminal {
			return res
		}
		logger.Warnf(ctx, "gps signal unavailable, falling back to ip")

	case domain.IPDerivedCity:
		// An explicit city signal that misses the table is a terminal
		// unsupported location, not a transient failure.
		if d, ok := district.FromCity(v.Name); ok {
			return result(reqID, d, domain.MethodIP, confIP)
		}
		return result(reqID, domain.DistrictUnsupported, domain.MethodIP, confIP)
	}

	if res, ok := s.resolveByIP(ctx, reqID); ok {
		return res
	}
	logger.Warnf(ctx, "ip lookup failed, falling back to cached district")

	if res, ok := s.resolveFromCache(ctx, reqID, sessionID); ok {
		return res
	}
	logger.Warnf(ctx, "no cached district, falling back to default %q", s.defaultDistrict)

	return result(reqID, s.defaultDistrict, domain.MethodDefault, confDefault)
}

// resolveCoordinates handles the GPS path. The second return value reports
// whether the outcome is terminal; false means the signal itself was
// unavailable and the chain should continue.
func (s *Service) resolveCoordinates(ctx context.Context, reqID uuid.UUID, c domain.Coordinates) (domain.ResolutionResult, bool) {
	if !district.RegionBounds.Contains(c.Lat, c.Lon) {
		return result(reqID, domain.DistrictUnsupported, domain.MethodGPS, confExact), true
	}

	geocoderAnswered := false
	for attempt := 1; s.geo != nil && attempt <= gpsAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.gpsTimeout)
		res, err := s.geo.ReverseGeocode(attemptCtx, c.Lat, c.Lon)
		cancel()

		if err != nil {
			logger.Warnf(ctx, "reverse geocode attempt %d/%d: %s", attempt, gpsAttempts, err.Error())
			if ctx.Err() != nil {
				// Superseded or cancelled; stop retrying.
				return domain.ResolutionResult{}, false
			}
			continue
		}

		geocoderAnswered = true
		if d, ok := district.Normalize(res.District); ok {
			return result(reqID, d, domain.MethodGPS, confGeocoded), true
		}
		break
	}

	if d, ok := district.NearestWithin(c.Lat, c.Lon); ok {
		return result(reqID, d, domain.MethodGPS, confNearest), true
	}

	if geocoderAnswered {
		// The provider located the point; it is just not a supported
		// district.
		return result(reqID, domain.DistrictUnsupported, domain.MethodGPS, confNearest), true
	}

	return domain.ResolutionResult{}, false
}

func (s *Service) resolveByIP(ctx context.Context, reqID uuid.UUID) (domain.ResolutionResult, bool) {
	if s.ip == nil {
		return domain.ResolutionResult{}, false
	}

	res, err := s.ip.Lookup(ctx, "")
	if err != nil {
		logger.Warnf(ctx, "ip lookup: %s", err.Error())
		return domain.ResolutionResult{}, false
	}

	d, ok := district.FromCity(res.City)
	if !ok {
		logger.Warnf(ctx, "ip city %q not in district table", res.City)
		return domain.ResolutionResult{}, false
	}

	return result(reqID, d, domain.MethodIP, confIP), true
}

func (s *Service) resolveFromCache(ctx context.Context, reqID uuid.UUID, sessionID string) (domain.ResolutionResult, bool) {
	if s.cache == nil || sessionID == "" {
		return domain.ResolutionResult{}, false
	}

	entry, err := s.cache.Get(ctx, sessionID)
	if err != nil {
		logger.Warnf(ctx, "session cache get: %s", err.Error())
		return domain.ResolutionResult{}, false
	}
	if entry == nil {
		return domain.ResolutionResult{}, false
	}

	d, ok := district.Normalize(entry.District)
	if !ok {
		return domain.ResolutionResult{}, false
	}

	return result(reqID, d, domain.MethodCache, confExact), true
}

func result(reqID uuid.UUID, d domain.District, m domain.ResolutionMethod, conf float64) domain.ResolutionResult {
	return domain.ResolutionResult{
		RequestID:  reqID,
		District:   d,
		Method:     m,
		Confidence: conf,
	}
}
