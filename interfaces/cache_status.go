package interfaces

// CacheStatus tells the caller whether a value came out of the cache or was
// loaded from the provider during the call.
type CacheStatus string

const (
	CacheStatusHit  CacheStatus = "hit"
	CacheStatusMiss CacheStatus = "miss"
)

func (cs CacheStatus) String() string {
	return string(cs)
}
