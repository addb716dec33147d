package regulation

import "errors"

var (
	ErrUnknownCity = errors.New("unknown city")
	ErrUnknownZone = errors.New("unknown zone for city")
)

// City identifies a supported municipality.
type City string

const (
	Chennai    City = "chennai"
	Coimbatore City = "coimbatore"
)

// Zone is the land-use classification of a plot.
type Zone string

const (
	ZoneResidential Zone = "residential"
	ZoneCommercial  Zone = "commercial"
	ZoneMixedUse    Zone = "mixed-use"
	ZoneITCorridor  Zone = "it-corridor"
)

// Bracket is a plot-size category used to select setback distances.
type Bracket string

const (
	BracketUpto300    Bracket = "upto300"
	Bracket301To500   Bracket = "301to500"
	Bracket501To1000  Bracket = "501to1000"
	Bracket1001To2000 Bracket = "1001to2000"
	Bracket2001To5000 Bracket = "2001to5000"
	BracketAbove5000  Bracket = "above5000"
)

// Setbacks are the mandatory open distances in meters on each side of
// the plot for one size bracket.
type Setbacks struct {
	Front float64 `json:"front"`
	Rear  float64 `json:"rear"`
	Side1 float64 `json:"side1"`
	Side2 float64 `json:"side2"`
}

// Max returns the largest of the four setback distances.
func (s Setbacks) Max() float64 {
	max := s.Front
	for _, v := range []float64{s.Rear, s.Side1, s.Side2} {
		if v > max {
			max = v
		}
	}
	return max
}

// ParkingRatios define parking demand per built-up area and the visitor
// surcharge applied on top of resident demand.
type ParkingRatios struct {
	SqmPerCarSpace        float64 `json:"sqm_per_car_space"`
	SqmPerTwoWheelerSpace float64 `json:"sqm_per_two_wheeler_space"`
	VisitorPercent        float64 `json:"visitor_percent"`
}

// ZoneRules holds the development-control parameters for one zone.
type ZoneRules struct {
	BaseFSI          float64               `json:"base_fsi"`
	PremiumFSI       float64               `json:"premium_fsi"`
	MaxCoverage      float64               `json:"max_coverage"`
	Setbacks         map[Bracket]Setbacks  `json:"setbacks"`
	Parking          ParkingRatios         `json:"parking"`
	HeightMultiplier float64               `json:"height_multiplier"`
}

// CityRegulations maps each zone of a city to its rule set.
type CityRegulations struct {
	City  City                `json:"city"`
	Zones map[Zone]*ZoneRules `json:"zones"`
}

// Standard residential setback ladder used by both cities. Commercial and
// IT-corridor zones widen the front setback at the larger brackets.
var residentialSetbacks = map[Bracket]Setbacks{
	BracketUpto300:    {Front: 1.5, Rear: 1.0, Side1: 1.0, Side2: 1.0},
	Bracket301To500:   {Front: 2.0, Rear: 1.5, Side1: 1.0, Side2: 1.0},
	Bracket501To1000:  {Front: 3.0, Rear: 2.0, Side1: 1.5, Side2: 1.5},
	Bracket1001To2000: {Front: 4.5, Rear: 3.0, Side1: 2.0, Side2: 2.0},
	Bracket2001To5000: {Front: 6.0, Rear: 3.5, Side1: 3.0, Side2: 3.0},
	BracketAbove5000:  {Front: 7.0, Rear: 5.0, Side1: 4.0, Side2: 4.0},
}

var commercialSetbacks = map[Bracket]Setbacks{
	BracketUpto300:    {Front: 3.0, Rear: 1.5, Side1: 1.0, Side2: 1.0},
	Bracket301To500:   {Front: 3.0, Rear: 2.0, Side1: 1.5, Side2: 1.5},
	Bracket501To1000:  {Front: 4.5, Rear: 2.5, Side1: 2.0, Side2: 2.0},
	Bracket1001To2000: {Front: 6.0, Rear: 3.0, Side1: 3.0, Side2: 3.0},
	Bracket2001To5000: {Front: 7.0, Rear: 4.0, Side1: 3.5, Side2: 3.5},
	BracketAbove5000:  {Front: 9.0, Rear: 5.0, Side1: 4.5, Side2: 4.5},
}

var tables = map[City]*CityRegulations{
	Chennai: {
		City: Chennai,
		Zones: map[Zone]*ZoneRules{
			ZoneResidential: {
				BaseFSI:          1.5,
				PremiumFSI:       3.25,
				MaxCoverage:      0.60,
				Setbacks:         residentialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 75, SqmPerTwoWheelerSpace: 40, VisitorPercent: 10},
				HeightMultiplier: 1.5,
			},
			ZoneCommercial: {
				BaseFSI:          2.0,
				PremiumFSI:       3.75,
				MaxCoverage:      0.70,
				Setbacks:         commercialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 50, SqmPerTwoWheelerSpace: 30, VisitorPercent: 20},
				HeightMultiplier: 1.5,
			},
			ZoneMixedUse: {
				BaseFSI:          1.75,
				PremiumFSI:       3.5,
				MaxCoverage:      0.65,
				Setbacks:         commercialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 60, SqmPerTwoWheelerSpace: 35, VisitorPercent: 15},
				HeightMultiplier: 1.5,
			},
			ZoneITCorridor: {
				BaseFSI:          2.5,
				PremiumFSI:       4.0,
				MaxCoverage:      0.65,
				Setbacks:         commercialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 55, SqmPerTwoWheelerSpace: 30, VisitorPercent: 15},
				HeightMultiplier: 2.0,
			},
		},
	},
	Coimbatore: {
		City: Coimbatore,
		Zones: map[Zone]*ZoneRules{
			ZoneResidential: {
				BaseFSI:          1.5,
				PremiumFSI:       3.0,
				MaxCoverage:      0.65,
				Setbacks:         residentialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 80, SqmPerTwoWheelerSpace: 45, VisitorPercent: 10},
				HeightMultiplier: 1.5,
			},
			ZoneCommercial: {
				BaseFSI:          2.0,
				PremiumFSI:       3.5,
				MaxCoverage:      0.70,
				Setbacks:         commercialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 55, SqmPerTwoWheelerSpace: 35, VisitorPercent: 20},
				HeightMultiplier: 1.5,
			},
			ZoneMixedUse: {
				BaseFSI:          1.75,
				PremiumFSI:       3.25,
				MaxCoverage:      0.65,
				Setbacks:         commercialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 65, SqmPerTwoWheelerSpace: 40, VisitorPercent: 15},
				HeightMultiplier: 1.5,
			},
			ZoneITCorridor: {
				BaseFSI:          2.25,
				PremiumFSI:       3.75,
				MaxCoverage:      0.65,
				Setbacks:         commercialSetbacks,
				Parking:          ParkingRatios{SqmPerCarSpace: 60, SqmPerTwoWheelerSpace: 35, VisitorPercent: 15},
				HeightMultiplier: 1.75,
			},
		},
	},
}

// Cities returns the supported city identifiers.
func Cities() []City {
	return []City{Chennai, Coimbatore}
}

// Get returns the full regulation table for a city. Unknown cities are
// an error, never a silent fallback.
func Get(city City) (*CityRegulations, error) {
	regs, ok := tables[city]
	if !ok {
		return nil, ErrUnknownCity
	}
	return regs, nil
}

// Rules returns the rule set for a city/zone pair.
func Rules(city City, zone Zone) (*ZoneRules, error) {
	regs, err := Get(city)
	if err != nil {
		return nil, err
	}
	rules, ok := regs.Zones[zone]
	if !ok {
		return nil, ErrUnknownZone
	}
	return rules, nil
}
