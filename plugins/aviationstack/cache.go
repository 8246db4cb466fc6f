package aviationstack

import (
	"fmt"
	"sync"
	"time"
)

// RouteCache remembers the provider's flight list per searched route for
// a short TTL. The API is paid and metered, so identical route searches
// within the TTL reuse the last response. Expired entries are simply
// overwritten on the next search; the key space (route pairs) stays
// small, so there is no eviction loop.
type RouteCache struct {
	mu      sync.RWMutex
	entries map[string]routeEntry
}

type routeEntry struct {
	flights []Flight
	expires time.Time
}

// NewRouteCache creates an empty cache
func NewRouteCache() *RouteCache {
	return &RouteCache{
		entries: make(map[string]routeEntry),
	}
}

// routeKey identifies one search; the limit is part of the key since it
// changes what the provider returns
func routeKey(departure, arrival string, limit int) string {
	return fmt.Sprintf("%s-%s:%d", departure, arrival, limit)
}

// Get returns the cached flight list for a route, if still fresh
func (c *RouteCache) Get(departure, arrival string, limit int) ([]Flight, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[routeKey(departure, arrival, limit)]
	if !found || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.flights, true
}

// Set stores the flight list for a route with a TTL
func (c *RouteCache) Set(departure, arrival string, limit int, flights []Flight, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[routeKey(departure, arrival, limit)] = routeEntry{
		flights: flights,
		expires: time.Now().Add(ttl),
	}
}
