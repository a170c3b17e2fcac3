// Package advisor is the single entry point external callers use: resolve
// the district, then reconcile crops for it.
package advisor

import (
	"context"
	"time"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
	"github.com/agrovision/cropadvisor/internal/pkg/sessioncache"
	"github.com/agrovision/cropadvisor/internal/service/locator"
	"github.com/agrovision/cropadvisor/internal/service/recommender"
)

type Service struct {
	locator     *locator.Service
	recommender *recommender.Service
	cache       sessioncache.Cache
}

func NewAdvisorService(loc *locator.Service, rec *recommender.Service, cache sessioncache.Cache) *Service {
	return &Service{locator: loc, recommender: rec, cache: cache}
}

// Recommendation is the facade output: the merged crop list plus how the
// district was resolved.
type Recommendation struct {
	Crops      []*domain.MergedCrop    `json:"crops"`
	Resolution domain.ResolutionResult `json:"resolution"`
}

// GetCrops resolves the district from the signal and reconciles crops for
// it. An unsupported resolution returns an empty list without touching the
// reconciler, so callers can tell "not supported" from "supported but
// empty".
func (s *Service) GetCrops(ctx context.Context, sessionID string, category domain.Category, sig domain.Signal) *Recommendation {
	resolution := s.locator.Resolve(ctx, sessionID, sig)
	if !resolution.Supported() {
		return &Recommendation{
			Crops:      []*domain.MergedCrop{},
			Resolution: resolution,
		}
	}

	crops := s.recommender.Reconcile(ctx, category, resolution.District)

	s.persistResolution(ctx, sessionID, resolution, sig)

	return &Recommendation{
		Crops:      crops,
		Resolution: resolution,
	}
}

// persistResolution seeds the cached-district signal for later sessions.
// Best effort; a cache failure never affects the response.
func (s *Service) persistResolution(ctx context.Context, sessionID string, res domain.ResolutionResult, sig domain.Signal) {
	if s.cache == nil || sessionID == "" {
		return
	}

	entry := &sessioncache.Entry{
		District:   string(res.District),
		ResolvedAt: time.Now(),
	}
	if coords, ok := sig.(domain.Coordinates); ok {
		entry.Lat = coords.Lat
		entry.Lon = coords.Lon
	}

	if err := s.cache.Put(ctx, sessionID, entry); err != nil {
		logger.Warnf(ctx, "persist resolution: %s", err.Error())
	}
}
