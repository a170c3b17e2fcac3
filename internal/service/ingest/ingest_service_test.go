package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/domain/dto"
	"github.com/agrovision/cropadvisor/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	details  []*dto.CropDetail
	harvests []*dto.DistrictCrops
}

func (f *fakeStore) ListCropDetails(ctx context.Context, opts store.ListCropDetailsOpts) ([]*domain.CropDetailRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListCropCategories(ctx context.Context, opts store.ListCropCategoriesOpts) ([]*domain.CropCategoryRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListDistrictsWithData(ctx context.Context) ([]string, error) { return nil, nil }

func (f *fakeStore) UpsertCropDetails(ctx context.Context, details []*dto.CropDetail) error {
	f.details = append(f.details, details...)
	return nil
}

func (f *fakeStore) UpsertDistrictCrops(ctx context.Context, harvest *dto.DistrictCrops) error {
	f.harvests = append(f.harvests, harvest)
	return nil
}

const indexPage = `<html><body>
<table class="district-list"><tbody>
<tr><th>Rangareddy</th><td><a href="/districts/rangareddy">view</a></td></tr>
<tr><th>Mulugu</th><td><a href="/districts/mulugu">view</a></td></tr>
</tbody></table>
</body></html>`

const districtPage = `<html><body>
<table class="crop-table"><caption>Short</caption><tbody>
<tr><th>Okra</th><td>Vegetable</td><td>Low</td><td>High</td><td>Pests</td><td>45-60 days</td><td>Red loam</td><td>Moderate</td><td>Warm</td></tr>
<tr><th>Tomato</th><td>Vegetable</td><td>High</td><td>High</td><td>Blight</td><td>60-90 days</td><td>Black soil</td><td>High</td><td>Warm</td></tr>
</tbody></table>
<table class="crop-table"><caption>Long</caption><tbody>
<tr><th>Mango</th><td>Fruit</td><td>Low</td><td>High</td><td>Hoppers</td><td>4-5 years</td><td>Alluvial</td><td>Low</td><td>Tropical</td></tr>
</tbody></table>
</body></html>`

const detailsPage = `<html><body>
<table class="crop-details"><tbody>
<tr><th>Okra</th><td>short</td><td>35,000</td><td>8000</td><td>25</td><td>60,000</td><td>70</td><td>3</td><td>Sow; irrigate; harvest</td></tr>
<tr><th>Mango</th><td>long</td><td>1,50,000</td><td>15000</td><td>50</td><td>2,50,000</td><td>68</td><td>12</td><td>Plant; prune; harvest</td></tr>
</tbody></table>
</body></html>`

func newPortal(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(indexPage))
	})
	mux.HandleFunc("/districts/rangareddy", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(districtPage))
	})
	mux.HandleFunc("/crops", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(detailsPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestParseAndSaveDistrictCrops(t *testing.T) {
	srv := newPortal(t)
	fs := &fakeStore{}
	svc := NewIngestService(fs)

	ingested, err := svc.ParseAndSaveDistrictCrops(context.Background(), srv.URL)
	require.NoError(t, err)

	// Mulugu is not on the master list and is skipped.
	assert.Equal(t, []string{"Rangareddy"}, ingested)

	require.Len(t, fs.harvests, 1)
	harvest := fs.harvests[0]
	assert.Equal(t, "Rangareddy", harvest.DistrictName)

	rows := harvest.Rows()
	require.Len(t, rows, 3)

	byName := make(map[string]*dto.CropCategoryRow)
	for _, r := range rows {
		byName[r.CropName] = r
	}

	okra := byName["Okra"]
	require.NotNil(t, okra)
	assert.Equal(t, domain.CategoryShort, okra.Category)
	assert.Equal(t, domain.CropTypeVegetable, okra.CropType)
	assert.Equal(t, "Red loam", okra.SoilType)
	assert.Equal(t, "45-60 days", okra.Duration)

	mango := byName["Mango"]
	require.NotNil(t, mango)
	assert.Equal(t, domain.CategoryLong, mango.Category)
	assert.Equal(t, domain.CropTypeFruit, mango.CropType)
}

func TestParseAndSaveCropDetails(t *testing.T) {
	srv := newPortal(t)
	fs := &fakeStore{}
	svc := NewIngestService(fs)

	count, err := svc.ParseAndSaveCropDetails(context.Background(), srv.URL+"/crops")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, fs.details, 2)

	okra := fs.details[0]
	assert.Equal(t, "Okra", okra.CropName)
	assert.Equal(t, domain.CategoryShort, okra.Category)
	assert.Equal(t, "35000", okra.Investment.String())
	assert.Equal(t, "60000", okra.ExpectedProfit.String())
	assert.Equal(t, "Sow; irrigate; harvest", okra.CultivationSteps)

	mango := fs.details[1]
	assert.Equal(t, domain.CategoryLong, mango.Category)
	assert.Equal(t, "150000", mango.Investment.String())
}

func TestParseAndSaveCropDetailsNotFound(t *testing.T) {
	srv := newPortal(t)
	fs := &fakeStore{}
	svc := NewIngestService(fs)

	// Retries exhaust against a 404 and surface an error.
	_, err := svc.ParseAndSaveCropDetails(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Empty(t, fs.details)
}
