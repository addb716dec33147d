package finance

import (
	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

// Statutory rates applied to Tamil Nadu residential transactions.
const (
	stampDutyRate    = 0.07
	registrationRate = 0.04
	// GST applies to under-construction sales, charged on construction value.
	gstRate = 0.05
)

// PricingTable holds per-city market assumptions in rupees.
type PricingTable struct {
	PricePerSqft        map[regulation.Zone]float64
	ConstructionPerSqft float64
	LandRatePerSqm      float64
}

// Default market assumptions. Chennai commands a premium over
// Coimbatore on both sale price and land.
var defaultPricing = map[regulation.City]PricingTable{
	regulation.Chennai: {
		PricePerSqft: map[regulation.Zone]float64{
			regulation.ZoneResidential: 7500,
			regulation.ZoneCommercial:  11000,
			regulation.ZoneMixedUse:    9000,
			regulation.ZoneITCorridor:  8500,
		},
		ConstructionPerSqft: 2400,
		LandRatePerSqm:      85000,
	},
	regulation.Coimbatore: {
		PricePerSqft: map[regulation.Zone]float64{
			regulation.ZoneResidential: 5500,
			regulation.ZoneCommercial:  8000,
			regulation.ZoneMixedUse:    6500,
			regulation.ZoneITCorridor:  6000,
		},
		ConstructionPerSqft: 2100,
		LandRatePerSqm:      35000,
	},
}

// Pricing returns the market table for a city.
func Pricing(city regulation.City) (PricingTable, error) {
	table, ok := defaultPricing[city]
	if !ok {
		return PricingTable{}, regulation.ErrUnknownCity
	}
	return table, nil
}

// Analyze projects revenue, cost and profit from a metrics snapshot.
// Pure function of its inputs; saleable area is the super-built-up
// total, priced per square foot.
func Analyze(m *models.Metrics, city regulation.City, zone regulation.Zone) (*models.FinancialAnalysis, error) {
	table, err := Pricing(city)
	if err != nil {
		return nil, err
	}
	pricePerSqft, ok := table.PricePerSqft[zone]
	if !ok {
		return nil, regulation.ErrUnknownZone
	}

	saleableSqft := m.SuperBuiltUpSqm / catalog.SqftToSqm
	builtUpSqft := m.BuiltUpSqm / catalog.SqftToSqm

	gdv := saleableSqft * pricePerSqft
	construction := builtUpSqft * table.ConstructionPerSqft
	land := m.PlotAreaSqm * table.LandRatePerSqm
	stampDuty := land * stampDutyRate
	registration := land * registrationRate
	gst := construction * gstRate

	totalCost := construction + land + stampDuty + registration + gst
	profit := gdv - totalCost

	margin := 0.0
	if gdv > 0 {
		margin = profit / gdv * 100
	}

	return &models.FinancialAnalysis{
		SaleableAreaSqft:      saleableSqft,
		PricePerSqft:          pricePerSqft,
		GrossDevelopmentValue: gdv,
		ConstructionCost:      construction,
		LandCost:              land,
		StampDuty:             stampDuty,
		Registration:          registration,
		GST:                   gst,
		TotalCost:             totalCost,
		Profit:                profit,
		ProfitMarginPercent:   margin,
	}, nil
}
