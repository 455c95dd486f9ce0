package validator

import (
	"container/list"
	"regexp"
	"sync"
)

// defaultPatternCacheSize bounds the number of compiled Pattern arguments kept in memory.
const defaultPatternCacheSize = 256

type patternEntry struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// patternCache memoizes regexp.Compile with LRU eviction.
// It caches compilation results only; rule resolution still probes the lookup on every call.
type patternCache struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		panic("pattern cache capacity must be positive")
	}
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

var patterns = newPatternCache(defaultPatternCacheSize)

// compile returns the compiled pattern, compiling and storing it on a miss.
// Compile errors are cached too so a broken resource string is not recompiled per call.
func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	if elem, ok := c.items[pattern]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*patternEntry)
		c.mu.Unlock()
		return entry.re, entry.err
	}
	c.mu.Unlock()

	re, err := regexp.Compile(pattern)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.order.MoveToFront(elem)
		return re, err
	}

	c.items[pattern] = c.order.PushFront(&patternEntry{pattern: pattern, re: re, err: err})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*patternEntry).pattern)
	}

	return re, err
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
