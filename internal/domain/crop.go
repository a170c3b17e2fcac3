package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the cultivation-duration tier a crop belongs to.
type Category string

const (
	CategoryShort  Category = "short"
	CategoryMedium Category = "medium"
	CategoryLong   Category = "long"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryShort, CategoryMedium, CategoryLong:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type CropType string

const (
	CropTypeVegetable  CropType = "Vegetable"
	CropTypeHerb       CropType = "Herb"
	CropTypeBerryFruit CropType = "Berry Fruit"
	CropTypeMedicinal  CropType = "Medicinal"
	CropTypeFruit      CropType = "Fruit"
)

// CropDetailRecord comes from the detail source, keyed by crop name only.
// Financial fields may be zero when the source has no data.
type CropDetailRecord struct {
	ID               int64           `db:"id"`
	CropName         string          `db:"crop_name"`
	Category         Category        `db:"category"`
	Investment       decimal.Decimal `db:"investment"`
	YieldPerAcre     decimal.Decimal `db:"yield_per_acre"`
	MarketPrice      decimal.Decimal `db:"market_price"`
	ExpectedProfit   decimal.Decimal `db:"expected_profit"`
	ROI              decimal.Decimal `db:"roi"`
	BreakEvenMonths  decimal.Decimal `db:"break_even_months"`
	CultivationSteps string          `db:"cultivation_steps"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// CropCategoryRecord comes from the category source, keyed by
// (crop name, district).
type CropCategoryRecord struct {
	ID                 int64     `db:"id"`
	CropName           string    `db:"crop_name"`
	DistrictName       string    `db:"district_name"`
	Category           Category  `db:"category"`
	CropType           CropType  `db:"crop_type"`
	SupplyStatus       string    `db:"supply_status"`
	DemandStatus       string    `db:"demand_status"`
	RiskFactors        string    `db:"risk_factors"`
	Duration           string    `db:"duration"`
	SoilType           string    `db:"soil_type"`
	WaterRequirement   string    `db:"water_requirement"`
	ClimateSuitability string    `db:"climate_suitability"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type FinancialSource string

const (
	FinancialSourceDetail  FinancialSource = "detail"
	FinancialSourceDefault FinancialSource = "default"
)

// MergedCrop is the reconciliation output: agronomic fields from the
// category source, financial fields from the detail source or the
// deterministic defaults. Unique by crop name within one result set.
type MergedCrop struct {
	CropName           string          `json:"crop_name"`
	District           District        `json:"district"`
	Category           Category        `json:"category"`
	CropType           CropType        `json:"crop_type"`
	SupplyStatus       string          `json:"supply_status"`
	DemandStatus       string          `json:"demand_status"`
	RiskFactors        string          `json:"risk_factors"`
	Duration           string          `json:"duration"`
	SoilType           string          `json:"soil_type"`
	WaterRequirement   string          `json:"water_requirement"`
	ClimateSuitability string          `json:"climate_suitability"`
	Investment         decimal.Decimal `json:"investment"`
	YieldPerAcre       decimal.Decimal `json:"yield_per_acre"`
	MarketPrice        decimal.Decimal `json:"market_price"`
	ExpectedProfit     decimal.Decimal `json:"expected_profit"`
	ROI                decimal.Decimal `json:"roi"`
	BreakEvenMonths    decimal.Decimal `json:"break_even_months"`
	CultivationSteps   string          `json:"cultivation_steps,omitempty"`
	FinancialSource    FinancialSource `json:"financial_source"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
