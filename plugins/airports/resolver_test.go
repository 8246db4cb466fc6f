package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve_SingleAirport(t *testing.T) {
	r := NewResolver()

	res := r.Resolve("Karachi")
	assert.Equal(t, ResolutionResolved, res.Kind)
	assert.Equal(t, "KHI", res.Code)
	assert.Empty(t, res.Candidates)
}

func TestResolver_Resolve_MultipleAirports(t *testing.T) {
	r := NewResolver()

	res := r.Resolve("london")
	assert.Equal(t, ResolutionAmbiguous, res.Kind)

	codes := make([]string, 0, len(res.Candidates))
	for _, a := range res.Candidates {
		codes = append(codes, a.Code)
	}
	assert.Equal(t, []string{"LHR", "LGW", "STN", "LTN"}, codes)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	r := NewResolver()

	res := r.Resolve("Nowhereland")
	assert.Equal(t, ResolutionNotFound, res.Kind)
	assert.Empty(t, res.Code)
	assert.Empty(t, res.Candidates)
}

func TestResolver_Resolve_CaseAndWhitespaceInsensitive(t *testing.T) {
	r := NewResolver()

	variants := []string{"karachi", "KARACHI", "Karachi", "  karachi  ", "\tKaRaChI\n"}
	for _, v := range variants {
		res := r.Resolve(v)
		assert.Equal(t, ResolutionResolved, res.Kind, "input %q", v)
		assert.Equal(t, "KHI", res.Code, "input %q", v)
	}

	// Multi-airport cities normalize the same way
	assert.Equal(t, r.Resolve("New York"), r.Resolve("  new york "))
}

func TestResolver_Resolve_MultiAirportTakesPriority(t *testing.T) {
	r := NewResolver()

	// Cities present in both tables must disambiguate, not silently
	// resolve to the primary airport
	for _, city := range []string{"london", "new york", "tokyo", "paris", "dubai"} {
		res := r.Resolve(city)
		assert.Equal(t, ResolutionAmbiguous, res.Kind, "city %q", city)
		assert.NotEmpty(t, res.Candidates, "city %q", city)
	}
}
