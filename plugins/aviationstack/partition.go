package aviationstack

import (
	"sort"
	"time"
)

// Outcome identifies which bucket a search result set fell into
type Outcome int

const (
	// OutcomeNoFlights means the provider returned an empty list
	OutcomeNoFlights Outcome = iota
	// OutcomeToday means at least one record matches the search date
	OutcomeToday
	// OutcomeUpcoming means all records are for later dates
	OutcomeUpcoming
)

// DateGroup holds the upcoming flights for a single date, in input order
type DateGroup struct {
	Date    string
	Flights []Flight
}

// PartitionResult is the single exhaustive outcome of a search:
// exactly one of Today or Upcoming is populated, or the outcome is
// OutcomeNoFlights.
type PartitionResult struct {
	Outcome  Outcome
	Today    []Flight
	Upcoming []DateGroup
}

// Partition splits raw flight records into today-vs-upcoming buckets.
// Today's flights take priority: if any record's flight_date equals the
// search date, only those are returned and the rest are discarded.
// Otherwise all records are grouped by date in ascending ISO order, a
// record without a date falling back to the search date.
func Partition(records []Flight, today time.Time) PartitionResult {
	if len(records) == 0 {
		return PartitionResult{Outcome: OutcomeNoFlights}
	}

	todayStr := today.Format("2006-01-02")

	var todays []Flight
	for _, f := range records {
		if f.FlightDate == todayStr {
			todays = append(todays, f)
		}
	}

	if len(todays) > 0 {
		return PartitionResult{Outcome: OutcomeToday, Today: todays}
	}

	byDate := make(map[string][]Flight)
	for _, f := range records {
		key := f.FlightDate
		if key == "" {
			key = todayStr
		}
		byDate[key] = append(byDate[key], f)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Lexicographic order equals chronological order for ISO dates
	sort.Strings(dates)

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, DateGroup{Date: d, Flights: byDate[d]})
	}

	return PartitionResult{Outcome: OutcomeUpcoming, Upcoming: groups}
}
