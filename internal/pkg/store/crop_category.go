package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/domain/dto"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
)

type ListCropCategoriesOpts struct {
	Category domain.Category
	District domain.District
}

var cropCategoryColumns = []string{
	"id", "crop_name", "district_name", "category", "crop_type",
	"supply_status", "demand_status", "risk_factors", "duration",
	"soil_type", "water_requirement", "climate_suitability",
	"created_at", "updated_at",
}

func (s *store) ListCropCategories(ctx context.Context, opts ListCropCategoriesOpts) ([]*domain.CropCategoryRecord, error) {
	query := builder().Select(cropCategoryColumns...).
		From(tableCropCategories).
		Where(sq.And{
			sq.Eq{"category": opts.Category},
			sq.Eq{"district_name": opts.District},
		}).
		OrderBy("id")

	var selected []*domain.CropCategoryRecord
	err := s.pool.Selectx(ctx, &selected, query)
	if err != nil {
		logger.Errorf(ctx, "ListCropCategories: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListDistrictsWithData(ctx context.Context) ([]string, error) {
	query := builder().Select("district_name").
		From(tableCropCategories).
		GroupBy("district_name").
		OrderBy("district_name")

	rows := make([]*struct {
		DistrictName string `db:"district_name"`
	}, 0, 31)

	err := s.pool.Selectx(ctx, &rows, query)
	if err != nil {
		logger.Errorf(ctx, "ListDistrictsWithData: %s", err.Error())
		return nil, wrapErr(err)
	}

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.DistrictName)
	}
	return names, nil
}

func (s *store) UpsertDistrictCrops(ctx context.Context, harvest *dto.DistrictCrops) error {
	rows := harvest.Rows()
	if len(rows) == 0 {
		return nil
	}

	query := builder().Insert(tableCropCategories).
		Columns("crop_name", "district_name", "category", "crop_type",
			"supply_status", "demand_status", "risk_factors", "duration",
			"soil_type", "water_requirement", "climate_suitability")

	for _, r := range rows {
		query = query.Values(r.CropName, harvest.DistrictName, r.Category,
			r.CropType, r.SupplyStatus, r.DemandStatus, r.RiskFactors,
			r.Duration, r.SoilType, r.WaterRequirement, r.ClimateSuitability)
	}

	query = query.Suffix(`
on conflict (crop_name, district_name, category)
do update
set
	crop_type = excluded.crop_type,
	supply_status = excluded.supply_status,
	demand_status = excluded.demand_status,
	risk_factors = excluded.risk_factors,
	duration = excluded.duration,
	soil_type = excluded.soil_type,
	water_requirement = excluded.water_requirement,
	climate_suitability = excluded.climate_suitability,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Error(ctx, err.Error())
		return fmt.Errorf("upsert district crops, district_name-%s: %w", harvest.DistrictName, err)
	}

	return nil
}
