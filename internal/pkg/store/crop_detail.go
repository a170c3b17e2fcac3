package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/domain/dto"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
)

type ListCropDetailsOpts struct {
	Category domain.Category
	// Names restricts the fetch to an allow-list of crop names. Nil means
	// no restriction.
	Names []string
}

var cropDetailColumns = []string{
	"id", "crop_name", "category", "investment", "yield_per_acre",
	"market_price", "expected_profit", "roi", "break_even_months",
	"cultivation_steps", "created_at", "updated_at",
}

func (s *store) ListCropDetails(ctx context.Context, opts ListCropDetailsOpts) ([]*domain.CropDetailRecord, error) {
	query := builder().Select(cropDetailColumns...).
		From(tableCropDetails).
		Where(sq.Eq{"category": opts.Category}).
		OrderBy("id")

	if len(opts.Names) > 0 {
		query = query.Where(sq.Eq{"crop_name": opts.Names})
	}

	var selected []*domain.CropDetailRecord
	err := s.pool.Selectx(ctx, &selected, query)
	if err != nil {
		logger.Errorf(ctx, "ListCropDetails: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertCropDetails(ctx context.Context, details []*dto.CropDetail) error {
	if len(details) == 0 {
		return nil
	}

	query := builder().Insert(tableCropDetails).
		Columns("crop_name", "category", "investment", "yield_per_acre",
			"market_price", "expected_profit", "roi", "break_even_months",
			"cultivation_steps")

	for _, d := range details {
		query = query.Values(d.CropName, d.Category, d.Investment, d.YieldPerAcre,
			d.MarketPrice, d.ExpectedProfit, d.ROI, d.BreakEvenMonths,
			d.CultivationSteps)
	}

	query = query.Suffix(`
on conflict (crop_name, category)
do update
set
	investment = excluded.investment,
	yield_per_acre = excluded.yield_per_acre,
	market_price = excluded.market_price,
	expected_profit = excluded.expected_profit,
	roi = excluded.roi,
	break_even_months = excluded.break_even_months,
	cultivation_steps = excluded.cultivation_steps,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Error(ctx, err.Error())
		return fmt.Errorf("upsert crop details: %w", err)
	}

	return nil
}
