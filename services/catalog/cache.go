package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a catalog response stays usable.
const DefaultCacheTTL = 10 * time.Minute

// Cache is an in-memory TTL cache for raw catalog API payloads. Expiry
// is lazy: an expired entry is treated as absent on read and its slot
// is reclaimed only when the same key is written again. The map grows
// without bound for the lifetime of the process, which is acceptable
// for a session-scoped cache over a finite endpoint space.
//
// The cache carries no hidden global state; the composition root owns
// the single instance and hands it to the catalog service.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	payload  []byte
	storedAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.payload, true
}

func (c *Cache) set(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: payload, storedAt: c.now()}
}

// cacheKey builds the deterministic request signature. Every parameter
// that changes the response is part of the key, including the
// content-filter flag, so toggling the filter can never surface a
// stale cross-contaminated payload.
func cacheKey(endpoint string, params map[string]string, includeRestricted bool) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteByte('?')
	for _, k := range keys {
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
		b.WriteByte('&')
	}
	b.WriteString("include_adult=")
	b.WriteString(strconv.FormatBool(includeRestricted))
	return b.String()
}
