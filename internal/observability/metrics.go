package observability

const (
	SourceCache  = "cache"
	SourceRemote = "remote"
)

type Metrics interface {
	IncCacheHit(kind string)
	IncCacheMiss(kind string)
	// ObserveRequest records one call against the remote data service.
	ObserveRequest(kind, op string, durMs float64, ok bool)
	// ObserveLookup records where a single-record lookup was served from.
	ObserveLookup(kind, source string, durMs float64)
}
