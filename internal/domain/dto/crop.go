package dto

import (
	"sync"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/shopspring/decimal"
)

// CropDetail is one parsed row bound for the detail source.
type CropDetail struct {
	CropName         string
	Category         domain.Category
	Investment       decimal.Decimal
	YieldPerAcre     decimal.Decimal
	MarketPrice      decimal.Decimal
	ExpectedProfit   decimal.Decimal
	ROI              decimal.Decimal
	BreakEvenMonths  decimal.Decimal
	CultivationSteps string
}

// CropCategoryRow is one parsed agronomic row for a district page.
type CropCategoryRow struct {
	CropName           string
	Category           domain.Category
	CropType           domain.CropType
	SupplyStatus       string
	DemandStatus       string
	RiskFactors        string
	Duration           string
	SoilType           string
	WaterRequirement   string
	ClimateSuitability string
}

// DistrictCrops accumulates rows for one district while page parsers run
// concurrently.
type DistrictCrops struct {
	DistrictName string

	rows   []*CropCategoryRow
	rowsMx sync.Mutex
}

func NewDistrictCrops(districtName string) *DistrictCrops {
	return &DistrictCrops{DistrictName: districtName}
}

func (d *DistrictCrops) PutRow(row *CropCategoryRow) {
	d.rowsMx.Lock()
	defer d.rowsMx.Unlock()

	d.rows = append(d.rows, row)
}

func (d *DistrictCrops) Rows() []*CropCategoryRow {
	d.rowsMx.Lock()
	defer d.rowsMx.Unlock()

	out := make([]*CropCategoryRow, len(d.rows))
	copy(out, d.rows)
	return out
}
