package observability

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) IncCacheHit(string)  {}
func (Noop) IncCacheMiss(string) {}

func (Noop) ObserveRequest(string, string, float64, bool) {}
func (Noop) ObserveLookup(string, string, float64)        {}
