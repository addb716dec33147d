package report

import (
	"fmt"
	"sort"
	"strings"

	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

// AreaStatement renders a plain-text summary of a metrics snapshot,
// suitable for export alongside a planning application.
func AreaStatement(m *models.Metrics, city regulation.City, zone regulation.Zone) string {
	var b strings.Builder

	b.WriteString("AREA STATEMENT\n")
	b.WriteString("==============\n\n")
	fmt.Fprintf(&b, "City: %s\n", city)
	fmt.Fprintf(&b, "Zone: %s\n\n", zone)

	fmt.Fprintf(&b, "Plot area:            %10.2f sqm\n", m.PlotAreaSqm)
	fmt.Fprintf(&b, "Built-up area:        %10.2f sqm\n", m.BuiltUpSqm)
	fmt.Fprintf(&b, "Carpet area:          %10.2f sqm\n", m.CarpetSqm)
	fmt.Fprintf(&b, "Super built-up area:  %10.2f sqm\n\n", m.SuperBuiltUpSqm)

	fmt.Fprintf(&b, "FSI:       achieved %.2f / allowed %.2f\n", m.AchievedFSI, m.AllowedFSI)
	fmt.Fprintf(&b, "Coverage:  achieved %.1f%% / allowed %.1f%%\n", m.AchievedCoverage*100, m.AllowedCoverage*100)
	fmt.Fprintf(&b, "Height:    achieved %.1f m / allowed %.1f m\n\n", m.AchievedHeightM, m.MaxHeightM)

	fmt.Fprintf(&b, "Units: %d total\n", m.UnitCount)
	bhks := make([]string, 0, len(m.UnitsByBHK))
	for bhk := range m.UnitsByBHK {
		bhks = append(bhks, string(bhk))
	}
	sort.Strings(bhks)
	for _, bhk := range bhks {
		fmt.Fprintf(&b, "  %-8s %d\n", bhk, m.UnitsByBHK[catalog.BHK(bhk)])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Parking: %d car spaces required, %d provided\n", m.CarSpacesRequired, m.CarSpacesProvided)
	fmt.Fprintf(&b, "         %d two-wheeler spaces required\n\n", m.TwoWheelersRequired)

	b.WriteString("Compliance:\n")
	fmt.Fprintf(&b, "  FSI       %s\n", verdict(m.Compliance.FSI))
	fmt.Fprintf(&b, "  Coverage  %s\n", verdict(m.Compliance.Coverage))
	fmt.Fprintf(&b, "  Setbacks  %s\n", verdict(m.Compliance.Setbacks))
	fmt.Fprintf(&b, "  Parking   %s\n", verdict(m.Compliance.Parking))
	fmt.Fprintf(&b, "  Height    %s\n", verdict(m.Compliance.Height))

	return b.String()
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
