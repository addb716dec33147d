package catalog

import (
	"errors"
	"strings"
)

var (
	ErrUnknownTemplate = errors.New("no unit template for BHK type")
	ErrUnknownCore     = errors.New("unknown core template")
)

// BHK is the bedroom-hall-kitchen classification of a residential unit.
// The set is closed: seven variants from a single room-kitchen through
// a four-bedroom unit.
type BHK string

const (
	BHK1RK  BHK = "1RK"
	BHK1    BHK = "1BHK"
	BHK1_5  BHK = "1.5BHK"
	BHK2    BHK = "2BHK"
	BHK2_5  BHK = "2.5BHK"
	BHK3    BHK = "3BHK"
	BHK4    BHK = "4BHK"
)

// AllBHK lists the supported categories in ascending size order.
func AllBHK() []BHK {
	return []BHK{BHK1RK, BHK1, BHK1_5, BHK2, BHK2_5, BHK3, BHK4}
}

// Room is one named sub-rectangle of a unit's internal layout, offset
// from the unit's local origin.
type Room struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	WidthM  float64 `json:"width_m"`
	DepthM  float64 `json:"depth_m"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// UnitTemplate is an immutable catalog entry describing one sellable
// unit design. Areas are in square feet per market convention; the
// physical footprint is in meters.
type UnitTemplate struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	BHKType          BHK     `json:"bhk_type"`
	CarpetSqft       float64 `json:"carpet_sqft"`
	BuiltUpSqft      float64 `json:"built_up_sqft"`
	SuperBuiltUpSqft float64 `json:"super_built_up_sqft"`
	WidthM           float64 `json:"width_m"`
	DepthM           float64 `json:"depth_m"`
	Rooms            []Room  `json:"rooms"`
	Color            string  `json:"color"`
	VastuCompliant   bool    `json:"vastu_compliant"`
}

// SqftToSqm converts market square feet to square meters.
const SqftToSqm = 0.092903

// SuperBuiltUpSqm returns the super-built-up area in square meters.
func (u *UnitTemplate) SuperBuiltUpSqm() float64 {
	return u.SuperBuiltUpSqft * SqftToSqm
}

// CarpetSqm returns the carpet area in square meters.
func (u *UnitTemplate) CarpetSqm() float64 {
	return u.CarpetSqft * SqftToSqm
}

// CoreTemplate describes a vertical circulation core (lifts + stairs).
type CoreTemplate struct {
	ID         string  `json:"id"`
	WidthM     float64 `json:"width_m"`
	DepthM     float64 `json:"depth_m"`
	LiftCount  int     `json:"lift_count"`
	StairCount int     `json:"stair_count"`
}

var coreTemplates = map[string]CoreTemplate{
	"small":  {ID: "core-small", WidthM: 4.0, DepthM: 6.0, LiftCount: 1, StairCount: 1},
	"medium": {ID: "core-medium", WidthM: 5.0, DepthM: 7.0, LiftCount: 2, StairCount: 2},
	"large":  {ID: "core-large", WidthM: 6.0, DepthM: 8.0, LiftCount: 3, StairCount: 2},
}

// Core returns a circulation core template by size name.
func Core(size string) (CoreTemplate, error) {
	c, ok := coreTemplates[size]
	if !ok {
		return CoreTemplate{}, ErrUnknownCore
	}
	return c, nil
}

// Templates returns the full immutable catalog.
func Templates() []*UnitTemplate {
	out := make([]*UnitTemplate, len(templates))
	copy(out, templates)
	return out
}

// Template looks up a catalog entry by identifier.
func Template(id string) (*UnitTemplate, error) {
	for _, tpl := range templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return nil, ErrUnknownTemplate
}

// ForBHK selects the representative template for a BHK category. A
// "Standard" design wins; when preferVastu is set a Vastu-compliant
// design takes precedence; otherwise the first match is used.
func ForBHK(bhk BHK, preferVastu bool) (*UnitTemplate, error) {
	var first, standard, vastu *UnitTemplate
	for _, tpl := range templates {
		if tpl.BHKType != bhk {
			continue
		}
		if first == nil {
			first = tpl
		}
		if standard == nil && strings.Contains(tpl.Name, "Standard") {
			standard = tpl
		}
		if vastu == nil && tpl.VastuCompliant {
			vastu = tpl
		}
	}
	if first == nil {
		return nil, ErrUnknownTemplate
	}
	if preferVastu && vastu != nil {
		return vastu, nil
	}
	if standard != nil {
		return standard, nil
	}
	return first, nil
}
