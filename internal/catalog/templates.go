package catalog

// Immutable template catalog sized for the Tamil Nadu mid-market. Areas
// follow market convention (square feet); footprints are metric.
var templates = []*UnitTemplate{
	{
		ID: "1rk-std", Name: "1 RK Standard", BHKType: BHK1RK,
		CarpetSqft: 280, BuiltUpSqft: 330, SuperBuiltUpSqft: 380,
		WidthM: 5.5, DepthM: 5.0, Color: "#FFE082",
		Rooms: []Room{
			{Name: "Room", Type: "living", WidthM: 4.0, DepthM: 3.6, OffsetX: 0, OffsetY: 1.4},
			{Name: "Kitchen", Type: "kitchen", WidthM: 1.5, DepthM: 2.2, OffsetX: 4.0, OffsetY: 2.8},
			{Name: "Bath", Type: "bathroom", WidthM: 1.5, DepthM: 1.4, OffsetX: 4.0, OffsetY: 0},
		},
	},
	{
		ID: "1bhk-std", Name: "1 BHK Standard", BHKType: BHK1,
		CarpetSqft: 450, BuiltUpSqft: 530, SuperBuiltUpSqft: 590,
		WidthM: 6.5, DepthM: 6.5, Color: "#81D4FA",
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 3.6, DepthM: 4.0, OffsetX: 0, OffsetY: 2.5},
			{Name: "Bedroom", Type: "bedroom", WidthM: 2.9, DepthM: 3.3, OffsetX: 3.6, OffsetY: 3.2},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.1, DepthM: 2.5, OffsetX: 0, OffsetY: 0},
			{Name: "Bath", Type: "bathroom", WidthM: 1.5, DepthM: 2.0, OffsetX: 3.6, OffsetY: 0.8},
		},
	},
	{
		ID: "1bhk-vastu", Name: "1 BHK Vastu", BHKType: BHK1,
		CarpetSqft: 460, BuiltUpSqft: 540, SuperBuiltUpSqft: 605,
		WidthM: 6.5, DepthM: 6.5, Color: "#4FC3F7", VastuCompliant: true,
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 3.6, DepthM: 4.0, OffsetX: 0, OffsetY: 2.5},
			{Name: "Bedroom", Type: "bedroom", WidthM: 2.9, DepthM: 3.3, OffsetX: 3.6, OffsetY: 3.2},
			// Vastu places the kitchen in the south-east corner.
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.1, DepthM: 2.5, OffsetX: 4.4, OffsetY: 0},
			{Name: "Bath", Type: "bathroom", WidthM: 1.5, DepthM: 2.0, OffsetX: 0, OffsetY: 0},
		},
	},
	{
		ID: "1.5bhk-std", Name: "1.5 BHK Standard", BHKType: BHK1_5,
		CarpetSqft: 560, BuiltUpSqft: 655, SuperBuiltUpSqft: 730,
		WidthM: 7.0, DepthM: 7.0, Color: "#A5D6A7",
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 3.8, DepthM: 4.2, OffsetX: 0, OffsetY: 2.8},
			{Name: "Bedroom", Type: "bedroom", WidthM: 3.2, DepthM: 3.4, OffsetX: 3.8, OffsetY: 3.6},
			{Name: "Study", Type: "bedroom", WidthM: 2.4, DepthM: 2.6, OffsetX: 3.8, OffsetY: 0.6},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.2, DepthM: 2.6, OffsetX: 0, OffsetY: 0},
			{Name: "Bath", Type: "bathroom", WidthM: 1.5, DepthM: 2.0, OffsetX: 2.3, OffsetY: 0},
		},
	},
	{
		ID: "2bhk-std", Name: "2 BHK Standard", BHKType: BHK2,
		CarpetSqft: 700, BuiltUpSqft: 820, SuperBuiltUpSqft: 915,
		WidthM: 8.5, DepthM: 7.5, Color: "#90CAF9",
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 4.2, DepthM: 4.6, OffsetX: 0, OffsetY: 2.9},
			{Name: "Master Bedroom", Type: "bedroom", WidthM: 3.6, DepthM: 3.6, OffsetX: 4.9, OffsetY: 3.9},
			{Name: "Bedroom 2", Type: "bedroom", WidthM: 3.3, DepthM: 3.3, OffsetX: 5.2, OffsetY: 0},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.4, DepthM: 2.8, OffsetX: 0, OffsetY: 0},
			{Name: "Bath 1", Type: "bathroom", WidthM: 1.5, DepthM: 2.2, OffsetX: 2.5, OffsetY: 0},
			{Name: "Bath 2", Type: "bathroom", WidthM: 1.4, DepthM: 2.0, OffsetX: 4.2, OffsetY: 5.5},
		},
	},
	{
		ID: "2bhk-vastu", Name: "2 BHK Vastu", BHKType: BHK2,
		CarpetSqft: 710, BuiltUpSqft: 835, SuperBuiltUpSqft: 930,
		WidthM: 8.5, DepthM: 7.5, Color: "#64B5F6", VastuCompliant: true,
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 4.2, DepthM: 4.6, OffsetX: 0, OffsetY: 2.9},
			{Name: "Master Bedroom", Type: "bedroom", WidthM: 3.6, DepthM: 3.6, OffsetX: 0, OffsetY: 0},
			{Name: "Bedroom 2", Type: "bedroom", WidthM: 3.3, DepthM: 3.3, OffsetX: 5.2, OffsetY: 4.2},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.4, DepthM: 2.8, OffsetX: 6.1, OffsetY: 0},
			{Name: "Bath 1", Type: "bathroom", WidthM: 1.5, DepthM: 2.2, OffsetX: 3.7, OffsetY: 0},
			{Name: "Bath 2", Type: "bathroom", WidthM: 1.4, DepthM: 2.0, OffsetX: 4.2, OffsetY: 5.5},
		},
	},
	{
		ID: "2.5bhk-std", Name: "2.5 BHK Standard", BHKType: BHK2_5,
		CarpetSqft: 840, BuiltUpSqft: 985, SuperBuiltUpSqft: 1075,
		WidthM: 9.5, DepthM: 8.0, Color: "#80DEEA",
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 4.6, DepthM: 4.8, OffsetX: 0, OffsetY: 3.2},
			{Name: "Master Bedroom", Type: "bedroom", WidthM: 3.8, DepthM: 3.8, OffsetX: 5.7, OffsetY: 4.2},
			{Name: "Bedroom 2", Type: "bedroom", WidthM: 3.4, DepthM: 3.4, OffsetX: 6.1, OffsetY: 0},
			{Name: "Study", Type: "bedroom", WidthM: 2.4, DepthM: 2.8, OffsetX: 3.0, OffsetY: 0},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.6, DepthM: 3.0, OffsetX: 0, OffsetY: 0},
			{Name: "Bath 1", Type: "bathroom", WidthM: 1.6, DepthM: 2.2, OffsetX: 4.6, OffsetY: 5.8},
			{Name: "Bath 2", Type: "bathroom", WidthM: 1.5, DepthM: 2.0, OffsetX: 5.5, OffsetY: 2.0},
		},
	},
	{
		ID: "3bhk-std", Name: "3 BHK Standard", BHKType: BHK3,
		CarpetSqft: 1020, BuiltUpSqft: 1200, SuperBuiltUpSqft: 1345,
		WidthM: 11.0, DepthM: 8.5, Color: "#CE93D8",
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 5.0, DepthM: 5.2, OffsetX: 0, OffsetY: 3.3},
			{Name: "Master Bedroom", Type: "bedroom", WidthM: 4.0, DepthM: 4.0, OffsetX: 7.0, OffsetY: 4.5},
			{Name: "Bedroom 2", Type: "bedroom", WidthM: 3.5, DepthM: 3.5, OffsetX: 7.5, OffsetY: 0},
			{Name: "Bedroom 3", Type: "bedroom", WidthM: 3.3, DepthM: 3.3, OffsetX: 3.2, OffsetY: 0},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.8, DepthM: 3.2, OffsetX: 0, OffsetY: 0},
			{Name: "Bath 1", Type: "bathroom", WidthM: 1.8, DepthM: 2.4, OffsetX: 5.1, OffsetY: 6.0},
			{Name: "Bath 2", Type: "bathroom", WidthM: 1.5, DepthM: 2.2, OffsetX: 6.6, OffsetY: 1.1},
		},
	},
	{
		ID: "3bhk-vastu", Name: "3 BHK Vastu", BHKType: BHK3,
		CarpetSqft: 1040, BuiltUpSqft: 1225, SuperBuiltUpSqft: 1370,
		WidthM: 11.0, DepthM: 8.5, Color: "#BA68C8", VastuCompliant: true,
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 5.0, DepthM: 5.2, OffsetX: 3.0, OffsetY: 3.3},
			{Name: "Master Bedroom", Type: "bedroom", WidthM: 4.0, DepthM: 4.0, OffsetX: 0, OffsetY: 0},
			{Name: "Bedroom 2", Type: "bedroom", WidthM: 3.5, DepthM: 3.5, OffsetX: 0, OffsetY: 5.0},
			{Name: "Bedroom 3", Type: "bedroom", WidthM: 3.3, DepthM: 3.3, OffsetX: 4.3, OffsetY: 0},
			{Name: "Kitchen", Type: "kitchen", WidthM: 2.8, DepthM: 3.2, OffsetX: 8.2, OffsetY: 0},
			{Name: "Bath 1", Type: "bathroom", WidthM: 1.8, DepthM: 2.4, OffsetX: 8.1, OffsetY: 6.1},
			{Name: "Bath 2", Type: "bathroom", WidthM: 1.5, DepthM: 2.2, OffsetX: 9.5, OffsetY: 3.4},
		},
	},
	{
		ID: "4bhk-std", Name: "4 BHK Standard", BHKType: BHK4,
		CarpetSqft: 1400, BuiltUpSqft: 1645, SuperBuiltUpSqft: 1830,
		WidthM: 13.0, DepthM: 9.5, Color: "#F48FB1",
		Rooms: []Room{
			{Name: "Hall", Type: "living", WidthM: 5.6, DepthM: 5.8, OffsetX: 0, OffsetY: 3.7},
			{Name: "Master Bedroom", Type: "bedroom", WidthM: 4.2, DepthM: 4.2, OffsetX: 8.8, OffsetY: 5.3},
			{Name: "Bedroom 2", Type: "bedroom", WidthM: 3.8, DepthM: 3.8, OffsetX: 9.2, OffsetY: 0},
			{Name: "Bedroom 3", Type: "bedroom", WidthM: 3.5, DepthM: 3.5, OffsetX: 5.4, OffsetY: 0},
			{Name: "Bedroom 4", Type: "bedroom", WidthM: 3.3, DepthM: 3.3, OffsetX: 5.9, OffsetY: 6.2},
			{Name: "Kitchen", Type: "kitchen", WidthM: 3.0, DepthM: 3.4, OffsetX: 0, OffsetY: 0},
			{Name: "Bath 1", Type: "bathroom", WidthM: 1.8, DepthM: 2.4, OffsetX: 3.2, OffsetY: 0},
			{Name: "Bath 2", Type: "bathroom", WidthM: 1.6, DepthM: 2.2, OffsetX: 8.8, OffsetY: 3.0},
		},
	},
}
