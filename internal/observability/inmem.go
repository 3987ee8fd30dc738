package observability

import "sync"

type observe struct {
	Kind   string
	Op     string
	Source string
	DurMs  float64
	OK     bool
}

// Inmem keeps the last max observations plus running cache totals. Useful
// for tests and for the CLI's stats output; not meant as a real exporter.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss map[string]int
	}
}

func NewInmem(max int) *Inmem {
	m := &Inmem{max: max}
	m.totals.cacheHits = make(map[string]int)
	m.totals.cacheMiss = make(map[string]int)
	return m
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) IncCacheHit(kind string) {
	m.mu.Lock()
	m.totals.cacheHits[kind]++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss(kind string) {
	m.mu.Lock()
	m.totals.cacheMiss[kind]++
	m.mu.Unlock()
}

func (m *Inmem) ObserveRequest(kind, op string, durMs float64, ok bool) {
	m.push(&observe{Kind: kind, Op: op, DurMs: durMs, OK: ok})
}

func (m *Inmem) ObserveLookup(kind, source string, durMs float64) {
	m.push(&observe{Kind: kind, Op: "lookup", Source: source, DurMs: durMs, OK: true})
}

// CacheTotals reports the running hit/miss counts for a kind.
func (m *Inmem) CacheTotals(kind string) (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits[kind], m.totals.cacheMiss[kind]
}
