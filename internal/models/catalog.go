package models

// BusinessCategories is the category list offered at business signup and in
// the vendor directory filters.
var BusinessCategories = []string{
	"Venue / Hall Services",
	"Catering Services",
	"Photography & Videography",
	"Decoration & Floral",
	"Event Planning",
	"Music & DJ",
	"Makeup & Hair",
	"Transportation / Car Rental",
	"Lighting & Sound",
	"Bakery & Cake",
	"Invitation & Printing",
	"Attire & Bridal",
	"Jewelry",
	"Entertainment",
	"Officiant",
	"Security Services",
	"Cleaning Services",
	"Other",
}

// ServiceTimeCategories are the pricing periods selectable on a service item.
var ServiceTimeCategories = []string{
	"Per hour",
	"Per day",
	"6 hours",
	"Morning (7am - 12pm)",
	"Day (1pm - 6pm)",
	"Evening (8pm - 2am)",
	"Fixed Price",
	"Other",
}

// CommonServiceOptions seed the service-name dropdown in the profile editor.
var CommonServiceOptions = []string{
	"Full Venue Rental",
	"Ballroom Access",
	"Catering (Plated)",
	"Catering (Buffet)",
	"Photography",
	"Event Planning (Consultation)",
	"Decoration Setup",
	"Car Rental (Premium)",
	"Live Band / Entertainment",
	"Standard Audio/Visual Setup",
	"Cleaning Services",
	"Other",
}

// Locations maps country -> city -> districts for the cascading location
// pickers.
var Locations = map[string]map[string][]string{
	"United States": {
		"New York":    {"Manhattan", "Brooklyn", "Queens", "Bronx", "Staten Island", "Downtown"},
		"Los Angeles": {"Hollywood", "Venice", "Downtown", "Beverly Hills"},
		"Scranton":    {"Downtown", "Farms", "Business Park"},
		"Chicago":     {"Loop", "Lincoln Park", "Wicker Park"},
	},
	"United Kingdom": {
		"London":     {"West End", "City of London", "Camden", "Greenwich", "Soho"},
		"Manchester": {"Northern Quarter", "Deansgate", "Castlefield"},
	},
	"United Arab Emirates": {
		"Dubai":     {"Marina", "Downtown", "Palm Jumeirah", "JLT", "Deira"},
		"Abu Dhabi": {"Corniche", "Yas Island", "Saadiyat"},
	},
	"Saudi Arabia": {
		"Riyadh": {"Al Olaya", "Al Malaz", "Al Maather", "Al Hada", "Al Takhassusi", "As Sulimaniyah", "Al Mohammadiyah", "Al Nakheel", "Al Diriyah", "King Abdullah Financial District", "Al Murabba", "As Sahafah", "Business Gate", "Diplomatic Quarter", "Al Rahmaniyah"},
		"Jeddah": {"Al Hamra", "Al Rawdah", "Al Shatie"},
		"Dammam": {"Al Faisaliyah", "Al Rakah"},
	},
}
