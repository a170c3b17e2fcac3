package recommender

import (
	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/shopspring/decimal"
)

// financialTuple is the deterministic substitute for missing financial
// data. Profit is part of the tuple, never recomputed from the other
// fields.
type financialTuple struct {
	Investment      decimal.Decimal
	YieldPerAcre    decimal.Decimal
	MarketPrice     decimal.Decimal
	ExpectedProfit  decimal.Decimal
	ROI             decimal.Decimal
	BreakEvenMonths decimal.Decimal
}

func tuple(investment, yield, price, profit, roi, breakEven int64) financialTuple {
	return financialTuple{
		Investment:      decimal.NewFromInt(investment),
		YieldPerAcre:    decimal.NewFromInt(yield),
		MarketPrice:     decimal.NewFromInt(price),
		ExpectedProfit:  decimal.NewFromInt(profit),
		ROI:             decimal.NewFromInt(roi),
		BreakEvenMonths: decimal.NewFromInt(breakEven),
	}
}

const otherCropType domain.CropType = "other"

// Short-tier defaults per crop type. Amounts are per acre.
var shortTierDefaults = map[domain.CropType]financialTuple{
	domain.CropTypeVegetable:  tuple(35000, 8000, 25, 60000, 70, 3),
	domain.CropTypeHerb:       tuple(30000, 4000, 60, 55000, 80, 3),
	domain.CropTypeBerryFruit: tuple(45000, 5000, 80, 70000, 65, 4),
	domain.CropTypeMedicinal:  tuple(40000, 3000, 120, 65000, 75, 4),
	domain.CropTypeFruit:      tuple(50000, 6000, 40, 70000, 60, 4),
	otherCropType:             tuple(30000, 5000, 30, 45000, 55, 4),
}

// Long-tier defaults; the medium tier shares these since its horizon is
// closer to long-duration cultivation.
var longTierDefaults = map[domain.CropType]financialTuple{
	domain.CropTypeVegetable:  tuple(90000, 20000, 30, 150000, 75, 8),
	domain.CropTypeHerb:       tuple(80000, 10000, 70, 140000, 80, 8),
	domain.CropTypeBerryFruit: tuple(120000, 12000, 90, 200000, 70, 10),
	domain.CropTypeMedicinal:  tuple(110000, 8000, 150, 180000, 72, 10),
	domain.CropTypeFruit:      tuple(150000, 15000, 50, 250000, 68, 12),
	otherCropType:             tuple(100000, 10000, 40, 120000, 60, 10),
}

// defaultsFor returns the backfill tuple for a crop type and duration tier.
// Pure lookup; identical inputs always yield identical tuples.
func defaultsFor(cropType domain.CropType, category domain.Category) financialTuple {
	table := longTierDefaults
	if category == domain.CategoryShort {
		table = shortTierDefaults
	}

	if t, ok := table[cropType]; ok {
		return t
	}
	return table[otherCropType]
}
