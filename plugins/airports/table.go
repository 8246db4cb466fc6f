package airports

// Airport is one candidate airport for a city
type Airport struct {
	Code string
	Name string
}

// cityToAirport maps normalized city names to their primary airport
// code. Loaded once at startup and never mutated, so it is safe to
// share across concurrent lookups without locking.
var cityToAirport = map[string]string{
	// Pakistan
	"karachi":    "KHI",
	"lahore":     "LHE",
	"islamabad":  "ISB",
	"peshawar":   "PEW",
	"quetta":     "UET",
	"multan":     "MUX",
	"faisalabad": "LYP",
	"sialkot":    "SKT",
	// UAE
	"dubai":     "DXB",
	"abu dhabi": "AUH",
	"sharjah":   "SHJ",
	// Saudi Arabia
	"riyadh": "RUH",
	"jeddah": "JED",
	"dammam": "DMM",
	"medina": "MED",
	// Major international cities
	"london":       "LHR",
	"new york":     "JFK",
	"paris":        "CDG",
	"tokyo":        "NRT",
	"singapore":    "SIN",
	"bangkok":      "BKK",
	"kuala lumpur": "KUL",
	"istanbul":     "IST",
	"doha":         "DOH",
	"muscat":       "MCT",
	"kuwait":       "KWI",
	"bahrain":      "BAH",
	"manchester":   "MAN",
	"birmingham":   "BHX",
	"toronto":      "YYZ",
	"chicago":      "ORD",
	"los angeles":  "LAX",
	"delhi":        "DEL",
	"mumbai":       "BOM",
	"chennai":      "MAA",
	"bangalore":    "BLR",
	"hyderabad":    "HYD",
	"kolkata":      "CCU",
}

// multiAirportCities lists cities served by more than one airport, in
// presentation order. These require user disambiguation before a search.
var multiAirportCities = map[string][]Airport{
	"london": {
		{Code: "LHR", Name: "Heathrow Airport"},
		{Code: "LGW", Name: "Gatwick Airport"},
		{Code: "STN", Name: "Stansted Airport"},
		{Code: "LTN", Name: "Luton Airport"},
	},
	"new york": {
		{Code: "JFK", Name: "John F. Kennedy International Airport"},
		{Code: "LGA", Name: "LaGuardia Airport"},
		{Code: "EWR", Name: "Newark Liberty International Airport"},
	},
	"tokyo": {
		{Code: "NRT", Name: "Narita International Airport"},
		{Code: "HND", Name: "Haneda Airport"},
	},
	"paris": {
		{Code: "CDG", Name: "Charles de Gaulle Airport"},
		{Code: "ORY", Name: "Orly Airport"},
	},
	"dubai": {
		{Code: "DXB", Name: "Dubai International Airport"},
		{Code: "DWC", Name: "Dubai World Central"},
	},
}
