package inventory

// Cities supported by the search surface.
var Cities = []string{
	"Mumbai", "Delhi", "Bengaluru", "Chennai", "Pune", "Hyderabad",
	"Kolkata", "Ahmedabad", "Surat", "Jaipur",
}

var operators = []string{
	"Blue Bus", "Green Bus", "Yellow Bus", "Red Bus Express",
	"Bharathi Travels", "Orange Travels", "Kallada Travels",
	"Parveen Travels", "VRL Travels", "SRS Travels",
}

var classTags = []string{
	"A/C Seater", "Non A/C Seater", "A/C Sleeper",
	"Non A/C Sleeper", "Volvo Multi-Axle A/C Sleeper",
}

var amenityCatalog = []string{
	"WiFi", "Charging Point", "AC", "Blanket", "Water Bottle",
	"Snacks", "Entertainment", "Reading Light",
}

var departureMinutes = []int{0, 15, 30, 45}
