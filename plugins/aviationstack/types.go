package aviationstack

import "fmt"

// FlightsResponse is the provider envelope for /v1/flights.
// A 200 response may still carry an Error object instead of Data; the
// error is checked before Data is inspected.
type FlightsResponse struct {
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       []Flight    `json:"data"`
	Error      *APIError   `json:"error,omitempty"`
}

// Pagination describes the provider's result paging
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

// APIError is the provider's soft-error payload (returned with HTTP 200)
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info"`
}

// Flight is a single raw flight record as returned by the provider.
// Except for the identifiers used for display, no field is guaranteed
// present; sub-objects are pointers so absence can be told apart from
// zero values.
type Flight struct {
	FlightDate   string       `json:"flight_date"`
	FlightStatus string       `json:"flight_status"`
	Departure    *Endpoint    `json:"departure"`
	Arrival      *Endpoint    `json:"arrival"`
	Airline      *Airline     `json:"airline"`
	Flight       *FlightIdent `json:"flight"`
}

// Endpoint holds departure or arrival details
type Endpoint struct {
	Airport   string  `json:"airport"`
	IATA      string  `json:"iata"`
	Terminal  *string `json:"terminal"`
	Gate      *string `json:"gate"`
	Delay     *int    `json:"delay"`
	Scheduled string  `json:"scheduled"`
}

// Airline identifies the marketing carrier
type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

// FlightIdent identifies the flight itself
type FlightIdent struct {
	Number     string     `json:"number"`
	IATA       string     `json:"iata"`
	Codeshared *Codeshare `json:"codeshared"`
}

// Codeshare describes the operating carrier for codeshared flights
type Codeshare struct {
	AirlineName string `json:"airline_name"`
	FlightIATA  string `json:"flight_iata"`
}

// ErrorKind classifies a failed provider call
type ErrorKind int

const (
	// ErrorKindTimeout means the request exceeded the client timeout
	ErrorKindTimeout ErrorKind = iota
	// ErrorKindNetwork covers DNS, connection refused, resets
	ErrorKindNetwork
	// ErrorKindHTTPStatus is a non-2xx HTTP response
	ErrorKindHTTPStatus
	// ErrorKindAPI is a soft error carried in a 200 body
	ErrorKindAPI
)

// SearchError is the typed outcome for a failed flight search.
// Every provider-level failure is converted into one of these; the tool
// layer maps each kind to a fixed user-facing message.
type SearchError struct {
	Kind       ErrorKind
	StatusCode int    // set for ErrorKindHTTPStatus
	Code       string // set for ErrorKindAPI
	Info       string // set for ErrorKindAPI
	Err        error  // underlying transport error, if any
}

func (e *SearchError) Error() string {
	switch e.Kind {
	case ErrorKindTimeout:
		return "flight search timed out"
	case ErrorKindNetwork:
		return fmt.Sprintf("flight search network failure: %v", e.Err)
	case ErrorKindHTTPStatus:
		return fmt.Sprintf("flight search returned HTTP %d", e.StatusCode)
	case ErrorKindAPI:
		return fmt.Sprintf("flight search API error %s: %s", e.Code, e.Info)
	}
	return "flight search failed"
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
