// Package airports resolves free-text city names to IATA airport codes
// using a static lookup table.
package airports

import "strings"

// ResolutionKind classifies a lookup result
type ResolutionKind int

const (
	// ResolutionResolved means the city maps to exactly one airport
	ResolutionResolved ResolutionKind = iota
	// ResolutionAmbiguous means the city has several airports and the
	// user must choose one before searching
	ResolutionAmbiguous
	// ResolutionNotFound means the city is not in the table. The input
	// may still be a raw IATA code; that call is the caller's to make.
	ResolutionNotFound
)

// Resolution is the result of a city lookup
type Resolution struct {
	Kind       ResolutionKind
	Code       string    // set for ResolutionResolved
	Candidates []Airport // set for ResolutionAmbiguous, in presentation order
}

// Resolver maps city names to airport codes over the static tables.
// It holds read-only state and is safe for concurrent use.
type Resolver struct {
	single map[string]string
	multi  map[string][]Airport
}

// NewResolver creates a resolver backed by the built-in city tables
func NewResolver() *Resolver {
	return &Resolver{
		single: cityToAirport,
		multi:  multiAirportCities,
	}
}

// Resolve looks up a city name. Input is lowercased and trimmed first,
// so lookups differing only by case or surrounding whitespace resolve
// identically. Pure function over the static table; no side effects.
func (r *Resolver) Resolve(cityName string) Resolution {
	city := strings.ToLower(strings.TrimSpace(cityName))

	if candidates, ok := r.multi[city]; ok {
		return Resolution{Kind: ResolutionAmbiguous, Candidates: candidates}
	}

	if code, ok := r.single[city]; ok {
		return Resolution{Kind: ResolutionResolved, Code: code}
	}

	return Resolution{Kind: ResolutionNotFound}
}
