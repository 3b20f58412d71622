package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime request counters.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64

	mu      sync.Mutex
	byRoute map[string]uint64
	events  map[string]uint64
}

func New() *Collector {
	return &Collector{byRoute: map[string]uint64{}, events: map[string]uint64{}}
}

// Record counts one finished request. route is the matched pattern, not
// the raw path.
func (c *Collector) Record(route string, status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
		c.clientErrors.Add(1)
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))

	if route == "" {
		route = "unmatched"
	}
	c.mu.Lock()
	c.byRoute[route]++
	c.mu.Unlock()
}

// Inc bumps a named domain event such as "leave.approved".
func (c *Collector) Inc(event string) {
	c.mu.Lock()
	c.events[event]++
	c.mu.Unlock()
}

type RouteCount struct {
	Route    string `json:"route"`
	Requests uint64 `json:"requests"`
}

type Snapshot struct {
	RequestsTotal    uint64            `json:"requestsTotal"`
	ClientErrorTotal uint64            `json:"clientErrorsTotal"`
	ServerErrorTotal uint64            `json:"serverErrorsTotal"`
	RateLimitedTotal uint64            `json:"rateLimitedTotal"`
	AvgDurationMs    float64           `json:"avgDurationMs"`
	Routes           []RouteCount      `json:"routes"`
	Events           map[string]uint64 `json:"events"`
}

func (c *Collector) Snapshot() Snapshot {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	out := Snapshot{
		RequestsTotal:    total,
		ClientErrorTotal: c.clientErrors.Load(),
		ServerErrorTotal: c.serverErrors.Load(),
		RateLimitedTotal: c.rateLimited.Load(),
		AvgDurationMs:    avg,
		Events:           map[string]uint64{},
	}

	c.mu.Lock()
	for route, n := range c.byRoute {
		out.Routes = append(out.Routes, RouteCount{Route: route, Requests: n})
	}
	for name, n := range c.events {
		out.Events[name] = n
	}
	c.mu.Unlock()

	sort.Slice(out.Routes, func(i, j int) bool { return out.Routes[i].Route < out.Routes[j].Route })
	return out
}
