package store

import (
	"context"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/domain/dto"
	"github.com/agrovision/cropadvisor/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the query surface over the two crop data sources. The detail
// source is keyed by crop name, the category source by crop name + district.
type Store interface {
	ListCropDetails(ctx context.Context, opts ListCropDetailsOpts) ([]*domain.CropDetailRecord, error)
	ListCropCategories(ctx context.Context, opts ListCropCategoriesOpts) ([]*domain.CropCategoryRecord, error)
	ListDistrictsWithData(ctx context.Context) ([]string, error)
	UpsertCropDetails(ctx context.Context, details []*dto.CropDetail) error
	UpsertDistrictCrops(ctx context.Context, harvest *dto.DistrictCrops) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
