package advisor

import (
	"context"
	"testing"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/domain/dto"
	"github.com/agrovision/cropadvisor/internal/pkg/sessioncache"
	"github.com/agrovision/cropadvisor/internal/pkg/store"
	"github.com/agrovision/cropadvisor/internal/service/locator"
	"github.com/agrovision/cropadvisor/internal/service/recommender"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	details    []*domain.CropDetailRecord
	categories []*domain.CropCategoryRecord
	fetchCalls int
}

func (f *fakeStore) ListCropDetails(ctx context.Context, opts store.ListCropDetailsOpts) ([]*domain.CropDetailRecord, error) {
	f.fetchCalls++
	return f.details, nil
}

func (f *fakeStore) ListCropCategories(ctx context.Context, opts store.ListCropCategoriesOpts) ([]*domain.CropCategoryRecord, error) {
	f.fetchCalls++
	return f.categories, nil
}

func (f *fakeStore) ListDistrictsWithData(ctx context.Context) ([]string, error) { return nil, nil }

func (f *fakeStore) UpsertCropDetails(ctx context.Context, d []*dto.CropDetail) error { return nil }

func (f *fakeStore) UpsertDistrictCrops(ctx context.Context, h *dto.DistrictCrops) error { return nil }

type fakeCache struct {
	entries  map[string]*sessioncache.Entry
	putCalls int
}

func (f *fakeCache) Get(ctx context.Context, sessionID string) (*sessioncache.Entry, error) {
	return f.entries[sessionID], nil
}

func (f *fakeCache) Put(ctx context.Context, sessionID string, entry *sessioncache.Entry) error {
	f.putCalls++
	if f.entries == nil {
		f.entries = map[string]*sessioncache.Entry{}
	}
	f.entries[sessionID] = entry
	return nil
}

func newAdvisor(fs *fakeStore, cache *fakeCache) *Service {
	loc := locator.NewLocatorService(nil, nil, cache, "Hyderabad")
	rec := recommender.NewRecommenderService(fs)
	return NewAdvisorService(loc, rec, cache)
}

func TestGetCropsUnsupportedSkipsReconcile(t *testing.T) {
	fs := &fakeStore{}
	svc := newAdvisor(fs, &fakeCache{})

	// Coordinates far outside the supported region.
	rec := svc.GetCrops(context.Background(), "s1", domain.CategoryShort, domain.Coordinates{Lat: 48.85, Lon: 2.35})

	require.NotNil(t, rec)
	assert.Empty(t, rec.Crops)
	assert.Equal(t, domain.DistrictUnsupported, rec.Resolution.District)
	assert.Equal(t, domain.MethodGPS, rec.Resolution.Method)
	assert.Zero(t, fs.fetchCalls, "unsupported resolution must not hit the store")
}

func TestGetCropsResolvesAndReconciles(t *testing.T) {
	fs := &fakeStore{
		details: []*domain.CropDetailRecord{{
			CropName:   "Tomato",
			Investment: decimal.NewFromInt(25000),
		}},
		categories: []*domain.CropCategoryRecord{{
			CropName:     "Tomato",
			DistrictName: "Rangareddy",
			CropType:     domain.CropTypeVegetable,
		}},
	}
	cache := &fakeCache{}
	svc := newAdvisor(fs, cache)

	rec := svc.GetCrops(context.Background(), "s1", domain.CategoryShort, domain.ManualDistrict{Name: "ranga reddy"})

	require.Len(t, rec.Crops, 1)
	assert.Equal(t, "Tomato", rec.Crops[0].CropName)
	assert.Equal(t, domain.District("Rangareddy"), rec.Crops[0].District)
	assert.Equal(t, domain.MethodManual, rec.Resolution.Method)

	// A successful resolution seeds the cached-district signal.
	require.Equal(t, 1, cache.putCalls)
	assert.Equal(t, "Rangareddy", cache.entries["s1"].District)
}

func TestGetCropsSupportedButEmptyDistinctFromUnsupported(t *testing.T) {
	fs := &fakeStore{}
	svc := newAdvisor(fs, &fakeCache{})

	rec := svc.GetCrops(context.Background(), "s1", domain.CategoryShort, domain.ManualDistrict{Name: "Nirmal"})

	assert.Empty(t, rec.Crops)
	assert.True(t, rec.Resolution.Supported())
	assert.Equal(t, domain.District("Nirmal"), rec.Resolution.District)
}
