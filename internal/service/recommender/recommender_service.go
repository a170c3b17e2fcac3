// Package recommender reconciles the two crop data sources into one
// de-duplicated, district-scoped result set.
package recommender

import (
	"context"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
	"github.com/agrovision/cropadvisor/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewRecommenderService(store store.Store) *Service {
	return &Service{store: store}
}

// categoryAllowLists restricts detail fetches for specific tiers to a fixed
// named subset of crops. The filter is category-specific, never
// district-specific.
var categoryAllowLists = map[domain.Category][]string{
	domain.CategoryLong: {
		"Mango", "Guava", "Pomegranate", "Sweet Orange", "Coconut",
		"Sapota", "Custard Apple", "Amla", "Banana", "Papaya",
		"Turmeric", "Ginger",
	},
}

// Reconcile merges detail and category records for (category, district).
// It never fails: a store error is logged and yields an empty list, the
// same outcome as a district with no data. Output entries are unique by
// crop name; detail-merged crops come first in stable fetch order,
// category-only crops follow in their own fetch order.
func (s *Service) Reconcile(ctx context.Context, category domain.Category, dist domain.District) []*domain.MergedCrop {
	var (
		details    []*domain.CropDetailRecord
		categories []*domain.CropCategoryRecord
	)

	// The two fetches are independent; the merge waits for both.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		details, err = s.store.ListCropDetails(egCtx, store.ListCropDetailsOpts{
			Category: category,
			Names:    categoryAllowLists[category],
		})
		return err
	})
	eg.Go(func() error {
		var err error
		categories, err = s.store.ListCropCategories(egCtx, store.ListCropCategoriesOpts{
			Category: category,
			District: dist,
		})
		return err
	})

	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "reconcile fetch, category-%s, district-%s: %s", category, dist, err.Error())
		return []*domain.MergedCrop{}
	}

	// Empty means no data for this district. It is a valid outcome, never
	// replaced with a static catalog.
	if len(details) == 0 || len(categories) == 0 {
		return []*domain.MergedCrop{}
	}

	details = dedupeByName(details)

	categoryByName := make(map[string]*domain.CropCategoryRecord, len(categories))
	for _, c := range categories {
		if _, ok := categoryByName[c.CropName]; !ok {
			categoryByName[c.CropName] = c
		}
	}

	merged := make([]*domain.MergedCrop, 0, len(categories))
	matched := make(map[string]bool, len(details))

	// Detail rows only survive when the crop is actually grown in the
	// resolved district.
	for _, d := range details {
		c, ok := categoryByName[d.CropName]
		if !ok {
			continue
		}
		merged = append(merged, mergeRecords(c, d, dist, category))
		matched[d.CropName] = true
	}

	for _, c := range categories {
		if matched[c.CropName] {
			continue
		}
		merged = append(merged, categoryOnly(c, dist, category))
		matched[c.CropName] = true
	}

	return merged
}

// dedupeByName keeps the first occurrence of every crop name, preserving
// fetch order. Upstream sources may carry duplicate rows.
func dedupeByName(details []*domain.CropDetailRecord) []*domain.CropDetailRecord {
	seen := make(map[string]bool, len(details))
	out := make([]*domain.CropDetailRecord, 0, len(details))
	for _, d := range details {
		if seen[d.CropName] {
			continue
		}
		seen[d.CropName] = true
		out = append(out, d)
	}
	return out
}

// mergeRecords joins one detail and one category record. Category fields are
// the agronomic truth, detail fields the financial truth; district and crop
// name always come from the category record.
func mergeRecords(c *domain.CropCategoryRecord, d *domain.CropDetailRecord, dist domain.District, category domain.Category) *domain.MergedCrop {
	mc := &domain.MergedCrop{
		CropName:           c.CropName,
		District:           dist,
		Category:           category,
		CropType:           c.CropType,
		SupplyStatus:       c.SupplyStatus,
		DemandStatus:       c.DemandStatus,
		RiskFactors:        c.RiskFactors,
		Duration:           c.Duration,
		SoilType:           c.SoilType,
		WaterRequirement:   c.WaterRequirement,
		ClimateSuitability: c.ClimateSuitability,
		Investment:         d.Investment,
		YieldPerAcre:       d.YieldPerAcre,
		MarketPrice:        d.MarketPrice,
		ExpectedProfit:     d.ExpectedProfit,
		ROI:                d.ROI,
		BreakEvenMonths:    d.BreakEvenMonths,
		CultivationSteps:   d.CultivationSteps,
		FinancialSource:    domain.FinancialSourceDetail,
	}

	if mc.Investment.IsZero() && mc.YieldPerAcre.IsZero() && mc.MarketPrice.IsZero() {
		applyDefaults(mc)
	}

	return mc
}

// categoryOnly builds a merged crop from a category record alone; the
// financial side always comes from the backfill table.
func categoryOnly(c *domain.CropCategoryRecord, dist domain.District, category domain.Category) *domain.MergedCrop {
	mc := &domain.MergedCrop{
		CropName:           c.CropName,
		District:           dist,
		Category:           category,
		CropType:           c.CropType,
		SupplyStatus:       c.SupplyStatus,
		DemandStatus:       c.DemandStatus,
		RiskFactors:        c.RiskFactors,
		Duration:           c.Duration,
		SoilType:           c.SoilType,
		WaterRequirement:   c.WaterRequirement,
		ClimateSuitability: c.ClimateSuitability,
	}
	applyDefaults(mc)
	return mc
}

func applyDefaults(mc *domain.MergedCrop) {
	t := defaultsFor(mc.CropType, mc.Category)
	mc.Investment = t.Investment
	mc.YieldPerAcre = t.YieldPerAcre
	mc.MarketPrice = t.MarketPrice
	mc.ExpectedProfit = t.ExpectedProfit
	mc.ROI = t.ROI
	mc.BreakEvenMonths = t.BreakEvenMonths
	mc.FinancialSource = domain.FinancialSourceDefault
}
