package config

import "grihaplan/server/internal/regulation"

// City holds the map presentation defaults for a supported city.
type City struct {
	Name      regulation.City `json:"name"`
	Label     string          `json:"label"`
	Center    []float64       `json:"center"`
	ZoomLevel int             `json:"zoom_level"`
}

// SupportedCities lists the cities the planner ships regulation tables
// for. Centers are (latitude, longitude) for the map widget.
var SupportedCities = []City{
	{
		Name:      regulation.Chennai,
		Label:     "Chennai",
		Center:    []float64{13.0827, 80.2707},
		ZoomLevel: 12,
	},
	{
		Name:      regulation.Coimbatore,
		Label:     "Coimbatore",
		Center:    []float64{11.0168, 76.9558},
		ZoomLevel: 12,
	},
}

// GetCityByName returns a city configuration by name.
func GetCityByName(name regulation.City) *City {
	for _, city := range SupportedCities {
		if city.Name == name {
			return &city
		}
	}
	return nil
}
