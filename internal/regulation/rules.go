package regulation

// Road-width thresholds from the building-control rules. Both are
// inclusive: a 12 m road already earns the 1.25x multiplier and an
// 18 m road already qualifies for premium FSI.
const (
	midRoadWidth     = 12.0
	premiumRoadWidth = 18.0
)

// SetbackCategory maps a continuous plot area in square meters to one of
// the six statutory size brackets. Boundary values resolve to the lower
// bracket (a 300 sqm plot is still "upto300").
func SetbackCategory(plotAreaSqm float64) Bracket {
	switch {
	case plotAreaSqm <= 300:
		return BracketUpto300
	case plotAreaSqm <= 500:
		return Bracket301To500
	case plotAreaSqm <= 1000:
		return Bracket501To1000
	case plotAreaSqm <= 2000:
		return Bracket1001To2000
	case plotAreaSqm <= 5000:
		return Bracket2001To5000
	default:
		return BracketAbove5000
	}
}

// SetbacksFor returns the setback distances for a plot of the given area.
func SetbacksFor(city City, zone Zone, plotAreaSqm float64) (Setbacks, error) {
	rules, err := Rules(city, zone)
	if err != nil {
		return Setbacks{}, err
	}
	return rules.Setbacks[SetbackCategory(plotAreaSqm)], nil
}

// AllowedFSI computes the FSI permitted for a plot on a road of the given
// width. Premium FSI requires an 18 m road and an explicit opt-in (it is
// a paid entitlement); without the opt-in a wide road still earns
// min(base x 1.5, premium), and a 12 m road earns base x 1.25.
func AllowedFSI(city City, zone Zone, roadWidthM float64, usePremium bool) (float64, error) {
	rules, err := Rules(city, zone)
	if err != nil {
		return 0, err
	}
	switch {
	case usePremium && roadWidthM >= premiumRoadWidth:
		return rules.PremiumFSI, nil
	case roadWidthM >= premiumRoadWidth:
		boosted := rules.BaseFSI * 1.5
		if boosted > rules.PremiumFSI {
			return rules.PremiumFSI, nil
		}
		return boosted, nil
	case roadWidthM >= midRoadWidth:
		return rules.BaseFSI * 1.25, nil
	default:
		return rules.BaseFSI, nil
	}
}

// MaxHeight computes the permissible building height in meters as a
// multiple of the abutting road width plus the front setback. IT-corridor
// plots get a relaxed multiplier (2.0 in Chennai, 1.75 in Coimbatore).
func MaxHeight(city City, zone Zone, roadWidthM, frontSetbackM float64) (float64, error) {
	rules, err := Rules(city, zone)
	if err != nil {
		return 0, err
	}
	return rules.HeightMultiplier * (roadWidthM + frontSetbackM), nil
}
