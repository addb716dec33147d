package models

import "grihaplan/server/internal/catalog"

// Compliance holds one independent pass/fail flag per regulation.
// Violations are reported, never raised as errors: the generator will
// happily produce a non-compliant design and say so.
type Compliance struct {
	FSI      bool `json:"fsi"`
	Coverage bool `json:"coverage"`
	Setbacks bool `json:"setbacks"`
	Parking  bool `json:"parking"`
	Height   bool `json:"height"`
}

// OK returns true when every rule passes.
func (c Compliance) OK() bool {
	return c.FSI && c.Coverage && c.Setbacks && c.Parking && c.Height
}

// Metrics is a read-only snapshot derived from the current site,
// buildings and regulatory selections. Always recomputed whole, never
// patched.
type Metrics struct {
	PlotAreaSqm         float64             `json:"plot_area_sqm"`
	BuiltUpSqm          float64             `json:"built_up_sqm"`
	CarpetSqm           float64             `json:"carpet_sqm"`
	SuperBuiltUpSqm     float64             `json:"super_built_up_sqm"`
	AchievedFSI         float64             `json:"achieved_fsi"`
	AllowedFSI          float64             `json:"allowed_fsi"`
	AchievedCoverage    float64             `json:"achieved_coverage"`
	AllowedCoverage     float64             `json:"allowed_coverage"`
	MaxHeightM          float64             `json:"max_height_m"`
	AchievedHeightM     float64             `json:"achieved_height_m"`
	UnitCount           int                 `json:"unit_count"`
	UnitsByBHK          map[catalog.BHK]int `json:"units_by_bhk"`
	CarSpacesRequired   int                 `json:"car_spaces_required"`
	CarSpacesProvided   int                 `json:"car_spaces_provided"`
	TwoWheelersRequired int                 `json:"two_wheelers_required"`
	Compliance          Compliance          `json:"compliance"`
}

// FinancialAnalysis is a pure projection of Metrics through the pricing
// and cost tables.
type FinancialAnalysis struct {
	SaleableAreaSqft      float64 `json:"saleable_area_sqft"`
	PricePerSqft          float64 `json:"price_per_sqft"`
	GrossDevelopmentValue float64 `json:"gross_development_value"`
	ConstructionCost      float64 `json:"construction_cost"`
	LandCost              float64 `json:"land_cost"`
	StampDuty             float64 `json:"stamp_duty"`
	Registration          float64 `json:"registration"`
	GST                   float64 `json:"gst"`
	TotalCost             float64 `json:"total_cost"`
	Profit                float64 `json:"profit"`
	ProfitMarginPercent   float64 `json:"profit_margin_percent"`
}
